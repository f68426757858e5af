package manager

import (
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/platforms"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/registration"
	"github.com/fleetci/fleetci/pkg/startup"
	"github.com/fleetci/fleetci/pkg/updates"
	"github.com/fleetci/fleetci/pkg/version"
	"github.com/fleetci/fleetci/pkg/webhooks"
)

// Manager wires the desired-state store, the container platform and the
// GitHub client into the services the commands operate on.
type Manager struct {
	Store      *startup.File
	Platform   platforms.Platform
	Client     *registration.Client
	Reconciler *reconcile.Reconciler
	Checker    *updates.Checker
	Notifier   *webhooks.Notifier
	Dispatcher *events.Dispatcher
	Version    *version.Version
}
