package manager

import (
	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/platforms"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/registration"
	"github.com/fleetci/fleetci/pkg/startup"
	"github.com/fleetci/fleetci/pkg/updates"
	"github.com/fleetci/fleetci/pkg/webhooks"
)

func New(store *startup.File, platform platforms.Platform, client *registration.Client) *Manager {
	return &Manager{
		Store:      store,
		Platform:   platform,
		Client:     client,
		Reconciler: reconcile.New(platform, client),
		Checker:    updates.New(client, store),
		Dispatcher: events.NewDispatcher(),
	}
}

// Load reads the desired state and rebuilds the notification pipeline from
// its webhooks section.
func (mgr *Manager) Load() (*configuration.Configuration, error) {
	config, err := mgr.Store.Load()

	if err != nil {
		return nil, err
	}

	mgr.Notifier = webhooks.New(config.Webhooks)
	mgr.Dispatcher = events.NewDispatcher(mgr.Notifier)

	return config, nil
}

func (mgr *Manager) Publish(evts []events.Event) {
	if mgr.Dispatcher == nil {
		return
	}

	mgr.Dispatcher.DispatchMany(evts)
}
