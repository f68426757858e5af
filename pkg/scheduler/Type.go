package scheduler

import (
	"context"
	"time"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/updates"
)

// Store reloads the desired state before every scheduled pass so a version
// bump written by the check action is picked up by the build that follows.
type Store interface {
	Load() (*configuration.Configuration, error)
}

type Scheduler struct {
	config     *configuration.Scheduler
	store      Store
	reconciler *reconcile.Reconciler
	checker    *updates.Checker
	dispatcher *events.Dispatcher

	interval    time.Duration
	windowStart int
	windowEnd   int
	days        map[time.Weekday]bool

	retryCount int
}

const ACTION_CHECK = "check"
const ACTION_BUILD = "build"
const ACTION_DEPLOY = "deploy"

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

type pass struct {
	ctx    context.Context
	config *configuration.Configuration
	failed bool
}
