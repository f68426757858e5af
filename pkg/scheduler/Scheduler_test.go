package scheduler

import (
	"testing"
	"time"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/go-playground/assert/v2"
)

func TestMain(m *testing.M) {
	logger.Log = logger.NewLogger("error", []string{"stdout"}, []string{"stderr"})
	m.Run()
}

func schedulerConfig() *configuration.Scheduler {
	return &configuration.Scheduler{
		Enabled:       true,
		CheckInterval: "15m",
		TimeWindow:    "02:00-04:00",
		Days:          []string{"mon", "tue", "wed", "thu", "fri"},
		Actions:       []string{ACTION_CHECK, ACTION_BUILD},
		MaxRetries:    3,
	}
}

func TestNew(t *testing.T) {
	type Wanted struct {
		err      string
		interval time.Duration
	}

	type Parameters struct {
		mutate func(config *configuration.Scheduler)
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Valid configuration",
			Wanted{interval: 15 * time.Minute},
			Parameters{mutate: func(config *configuration.Scheduler) {}},
		},
		{
			"Interval in seconds",
			Wanted{interval: 30 * time.Second},
			Parameters{mutate: func(config *configuration.Scheduler) { config.CheckInterval = "30s" }},
		},
		{
			"Interval in hours",
			Wanted{interval: 6 * time.Hour},
			Parameters{mutate: func(config *configuration.Scheduler) { config.CheckInterval = "6h" }},
		},
		{
			"Interval without unit",
			Wanted{err: "invalid interval format: 15"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.CheckInterval = "15" }},
		},
		{
			"Interval with unknown unit",
			Wanted{err: "invalid interval format: 2d"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.CheckInterval = "2d" }},
		},
		{
			"Zero interval",
			Wanted{err: "invalid interval format: 0m"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.CheckInterval = "0m" }},
		},
		{
			"Malformed window",
			Wanted{err: "invalid time window format: 2:00-4:00"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.TimeWindow = "2:00-4:00" }},
		},
		{
			"Window out of range",
			Wanted{err: "invalid time window format: 25:00-26:00"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.TimeWindow = "25:00-26:00" }},
		},
		{
			"No valid day",
			Wanted{err: "no valid day configured"},
			Parameters{mutate: func(config *configuration.Scheduler) { config.Days = []string{"monday", "funday"} }},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := schedulerConfig()
			tc.parameters.mutate(config)

			scheduler, err := New(config, nil, nil, nil, nil)

			if tc.wanted.err != "" {
				assert.NotEqual(t, err, nil)
				assert.Equal(t, err.Error(), tc.wanted.err)
				return
			}

			assert.Equal(t, err, nil)
			assert.Equal(t, scheduler.interval, tc.wanted.interval)
		})
	}
}

func TestNewIgnoresUnknownDays(t *testing.T) {
	config := schedulerConfig()
	config.Days = []string{"mon", "someday", "sun"}

	scheduler, err := New(config, nil, nil, nil, nil)

	assert.Equal(t, err, nil)
	assert.Equal(t, scheduler.days, map[time.Weekday]bool{time.Monday: true, time.Sunday: true})
}

func TestPermitted(t *testing.T) {
	type Wanted struct {
		permitted bool
	}

	type Parameters struct {
		window string
		days   []string
		now    time.Time
	}

	// 2026-08-24 is a Monday.
	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Inside window on allowed day",
			Wanted{permitted: true},
			Parameters{
				window: "02:00-04:00",
				days:   []string{"mon"},
				now:    time.Date(2026, 8, 24, 3, 0, 0, 0, time.UTC),
			},
		},
		{
			"Window bounds are inclusive",
			Wanted{permitted: true},
			Parameters{
				window: "02:00-04:00",
				days:   []string{"mon"},
				now:    time.Date(2026, 8, 24, 4, 0, 0, 0, time.UTC),
			},
		},
		{
			"One minute past the window",
			Wanted{permitted: false},
			Parameters{
				window: "02:00-04:00",
				days:   []string{"mon"},
				now:    time.Date(2026, 8, 24, 4, 1, 0, 0, time.UTC),
			},
		},
		{
			"Before the window",
			Wanted{permitted: false},
			Parameters{
				window: "02:00-04:00",
				days:   []string{"mon"},
				now:    time.Date(2026, 8, 24, 1, 59, 0, 0, time.UTC),
			},
		},
		{
			"Day not allowed",
			Wanted{permitted: false},
			Parameters{
				window: "00:00-23:59",
				days:   []string{"sat", "sun"},
				now:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			},
		},
		{
			"Whole day window",
			Wanted{permitted: true},
			Parameters{
				window: "00:00-23:59",
				days:   []string{"mon"},
				now:    time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := schedulerConfig()
			config.TimeWindow = tc.parameters.window
			config.Days = tc.parameters.days

			scheduler, err := New(config, nil, nil, nil, nil)

			assert.Equal(t, err, nil)
			assert.Equal(t, scheduler.Permitted(tc.parameters.now), tc.wanted.permitted)
		})
	}
}
