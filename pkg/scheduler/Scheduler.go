package scheduler

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/metrics"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/updates"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var intervalFormat = regexp.MustCompile(`^(\d+)([smh])$`)
var windowFormat = regexp.MustCompile(`^(\d{2}):(\d{2})-(\d{2}):(\d{2})$`)

// New validates the scheduler configuration up front: a malformed interval,
// time window or day list is a configuration error, not something to discover
// at three in the morning.
func New(config *configuration.Scheduler, store Store, reconciler *reconcile.Reconciler, checker *updates.Checker, dispatcher *events.Dispatcher) (*Scheduler, error) {
	scheduler := &Scheduler{
		config:     config,
		store:      store,
		reconciler: reconciler,
		checker:    checker,
		dispatcher: dispatcher,
		days:       map[time.Weekday]bool{},
	}

	match := intervalFormat.FindStringSubmatch(config.CheckInterval)

	if match == nil {
		return nil, errors.Errorf("invalid interval format: %s", config.CheckInterval)
	}

	value, _ := strconv.Atoi(match[1])

	switch match[2] {
	case "s":
		scheduler.interval = time.Duration(value) * time.Second
	case "m":
		scheduler.interval = time.Duration(value) * time.Minute
	case "h":
		scheduler.interval = time.Duration(value) * time.Hour
	}

	if scheduler.interval <= 0 {
		return nil, errors.Errorf("invalid interval format: %s", config.CheckInterval)
	}

	match = windowFormat.FindStringSubmatch(config.TimeWindow)

	if match == nil {
		return nil, errors.Errorf("invalid time window format: %s", config.TimeWindow)
	}

	startHour, _ := strconv.Atoi(match[1])
	startMinute, _ := strconv.Atoi(match[2])
	endHour, _ := strconv.Atoi(match[3])
	endMinute, _ := strconv.Atoi(match[4])

	if startHour > 23 || endHour > 23 || startMinute > 59 || endMinute > 59 {
		return nil, errors.Errorf("invalid time window format: %s", config.TimeWindow)
	}

	scheduler.windowStart = startHour*60 + startMinute
	scheduler.windowEnd = endHour*60 + endMinute

	for _, day := range config.Days {
		if weekday, ok := weekdays[day]; ok {
			scheduler.days[weekday] = true
		}
	}

	if len(scheduler.days) == 0 {
		return nil, errors.New("no valid day configured")
	}

	return scheduler, nil
}

// Run ticks until the context is cancelled or the retry cutoff is reached.
func (scheduler *Scheduler) Run(ctx context.Context) error {
	logger.Log.Info("scheduler started",
		zap.Duration("interval", scheduler.interval),
		zap.String("window", scheduler.config.TimeWindow),
		zap.Strings("actions", scheduler.config.Actions),
	)

	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			scheduler.tick(ctx, time.Now())

			if scheduler.retryCount >= scheduler.config.MaxRetries {
				return errors.Errorf("maximum retry count reached (%d)", scheduler.config.MaxRetries)
			}
		}
	}
}

func (scheduler *Scheduler) tick(ctx context.Context, now time.Time) {
	if !scheduler.Permitted(now) {
		logger.Log.Debug("outside allowed time window, task postponed")

		metrics.SchedulerRuns.Increment("skipped")
		return
	}

	config, err := scheduler.store.Load()

	if err != nil {
		logger.Log.Error("failed to load configuration", zap.String("error", err.Error()))

		scheduler.retryCount += 1
		metrics.SchedulerRuns.Increment("failure")
		return
	}

	run := &pass{ctx: ctx, config: config}
	scheduler.execute(run)

	if run.failed {
		scheduler.retryCount += 1
		metrics.SchedulerRuns.Increment("failure")
		return
	}

	scheduler.retryCount = 0
	metrics.SchedulerRuns.Increment("success")
}

// Permitted reports whether the given instant falls on an allowed day and
// inside the configured time window, both bounds inclusive.
func (scheduler *Scheduler) Permitted(now time.Time) bool {
	if !scheduler.days[now.Weekday()] {
		return false
	}

	minutes := now.Hour()*60 + now.Minute()

	return minutes >= scheduler.windowStart && minutes <= scheduler.windowEnd
}

func (scheduler *Scheduler) execute(run *pass) {
	if !scheduler.action(ACTION_CHECK) {
		return
	}

	result := scheduler.checker.Check(run.ctx, run.config, scheduler.action(ACTION_BUILD))
	scheduler.dispatcher.DispatchMany(events.FromUpdate(result))

	if result.Error != "" {
		logger.Log.Error("update check failed", zap.String("error", result.Error))

		run.failed = true
		return
	}

	if !result.UpdateAvailable {
		logger.Log.Info("runner image is up to date", zap.String("version", result.CurrentVersion))
		return
	}

	logger.Log.Info("new runner version available",
		zap.String("current", result.CurrentVersion),
		zap.String("latest", result.LatestVersion),
	)

	if !scheduler.action(ACTION_BUILD) || !result.Updated {
		return
	}

	// The rewrite changed the pinned base image, reload before building.
	config, err := scheduler.store.Load()

	if err != nil {
		logger.Log.Error("failed to reload configuration", zap.String("error", err.Error()))

		run.failed = true
		return
	}

	run.config = config
	scheduler.build(run)
}

func (scheduler *Scheduler) build(run *pass) {
	logger.Log.Info("rebuilding runner images")

	result := scheduler.reconciler.Build(run.ctx, run.config, true)
	scheduler.dispatcher.DispatchMany(events.FromBuild(result))

	for _, entry := range result.Errors {
		logger.Log.Error("image build failed", zap.String("group", entry.Name), zap.String("error", entry.Reason))

		run.failed = true
	}

	if scheduler.action(ACTION_DEPLOY) && len(result.Built) > 0 {
		scheduler.deploy(run)
	}
}

func (scheduler *Scheduler) deploy(run *pass) {
	logger.Log.Info("deploying runners")

	result := scheduler.reconciler.Start(run.ctx, run.config)
	scheduler.dispatcher.DispatchMany(events.FromStart(result))
	observe(run.config, result)

	for _, entry := range result.Errors {
		logger.Log.Error("runner deployment failed", zap.String("name", entry.Name), zap.String("error", entry.Reason))

		run.failed = true
	}
}

func (scheduler *Scheduler) action(name string) bool {
	for _, action := range scheduler.config.Actions {
		if action == name {
			return true
		}
	}

	return false
}

func observe(config *configuration.Configuration, result *reconcile.StartResult) {
	metrics.ReconcilePasses.Increment("start")
	metrics.ReconcileActions.Add(float64(len(result.Started)), "start", "started")
	metrics.ReconcileActions.Add(float64(len(result.Restarted)), "start", "restarted")
	metrics.ReconcileActions.Add(float64(len(result.Running)), "start", "running")
	metrics.ReconcileActions.Add(float64(len(result.Removed)), "start", "removed")
	metrics.ReconcileActions.Add(float64(len(result.Errors)), "start", "errors")

	running := map[string]int{}

	for _, bucket := range [][]reconcile.Entry{result.Started, result.Restarted, result.Running} {
		for _, entry := range bucket {
			running[entry.Group] += 1
		}
	}

	for _, group := range config.Runners {
		metrics.RunnersConfigured.Set(float64(group.Replicas), group.ID)
		metrics.RunnersRunning.Set(float64(running[group.ID]), group.ID)
	}
}
