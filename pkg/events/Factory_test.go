package events

import (
	"testing"

	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/updates"
	"github.com/go-playground/assert/v2"
)

func typesOf(events []Event) []string {
	var out []string

	for _, event := range events {
		out = append(out, event.Type)
	}

	return out
}

func TestFromStart(t *testing.T) {
	result := &reconcile.StartResult{
		Started:   []reconcile.Entry{{Name: "ci-php-1", Group: "php", Image: "ci-php:latest"}},
		Restarted: []reconcile.Entry{{Name: "ci-php-2", Group: "php"}},
		Removed:   []reconcile.Entry{{Name: "ci-php-3", Group: "php"}},
		Errors:    []reconcile.Entry{{Name: "ci-php-4", Group: "php", Operation: "start", Reason: "boom"}},
	}

	out := FromStart(result)

	assert.Equal(t, typesOf(out), []string{
		EVENT_RUNNER_STARTED,
		EVENT_RUNNER_STARTED,
		EVENT_RUNNER_REMOVED,
		EVENT_RUNNER_ERROR,
	})

	assert.Equal(t, out[0].Data["image"], "ci-php:latest")
	assert.Equal(t, out[0].Data["name"], "ci-php-1")
	assert.Equal(t, out[1].Reason, "restarted")
	assert.Equal(t, out[3].Data["error"], "boom")
	assert.Equal(t, out[3].Data["operation"], "start")
	assert.NotEqual(t, out[0].ID, "")
}

func TestFromStop(t *testing.T) {
	result := &reconcile.StopResult{
		Stopped: []reconcile.Entry{{Name: "ci-php-1", Group: "php"}},
		Skipped: []reconcile.Entry{{Name: "ci-php-2", Group: "php", Reason: "not running"}},
	}

	out := FromStop(result)

	assert.Equal(t, typesOf(out), []string{EVENT_RUNNER_STOPPED, EVENT_RUNNER_SKIPPED})
	assert.Equal(t, out[1].Data["operation"], "stop")
	assert.Equal(t, out[1].Reason, "not running")
}

func TestFromBuild(t *testing.T) {
	result := &reconcile.BuildResult{
		Built:  []reconcile.Entry{{Name: "php", Image: "php:8.3-2.321.0", Dockerfile: "images/php/Dockerfile"}},
		Errors: []reconcile.Entry{{Name: "node", Image: "node:22-2.321.0", Reason: "step 4/9 failed"}},
	}

	out := FromBuild(result)

	assert.Equal(t, typesOf(out), []string{EVENT_BUILD_COMPLETED, EVENT_BUILD_FAILED})
	assert.Equal(t, out[0].Data["dockerfile"], "images/php/Dockerfile")
	assert.Equal(t, out[1].Data["error"], "step 4/9 failed")
}

func TestFromUpdate(t *testing.T) {
	type Wanted struct {
		types []string
	}

	type Parameters struct {
		result *updates.Result
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Up to date",
			Wanted{types: nil},
			Parameters{result: &updates.Result{CurrentVersion: "2.321.0", LatestVersion: "2.321.0"}},
		},
		{
			"Available only",
			Wanted{types: []string{EVENT_UPDATE_AVAILABLE}},
			Parameters{result: &updates.Result{CurrentVersion: "2.321.0", LatestVersion: "2.322.0", UpdateAvailable: true}},
		},
		{
			"Applied",
			Wanted{types: []string{EVENT_UPDATE_AVAILABLE, EVENT_IMAGE_UPDATED}},
			Parameters{result: &updates.Result{
				CurrentVersion:  "2.321.0",
				LatestVersion:   "2.322.0",
				UpdateAvailable: true,
				Updated:         true,
				NewImage:        "ghcr.io/actions/actions-runner:2.322.0",
			}},
		},
		{
			"Failed",
			Wanted{types: []string{EVENT_UPDATE_ERROR}},
			Parameters{result: &updates.Result{Error: "network is down"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, typesOf(FromUpdate(tc.parameters.result)), tc.wanted.types)
		})
	}
}

func TestDispatcherFiltersBySupport(t *testing.T) {
	var delivered []string

	channel := &fakeChannel{accept: EVENT_RUNNER_STARTED, delivered: &delivered}
	dispatcher := NewDispatcher(channel)

	dispatcher.DispatchMany([]Event{
		New(EVENT_RUNNER_STARTED, "ci-php-1", "", nil),
		New(EVENT_RUNNER_STOPPED, "ci-php-1", "", nil),
	})

	assert.Equal(t, delivered, []string{EVENT_RUNNER_STARTED})
}

type fakeChannel struct {
	accept    string
	delivered *[]string
}

func (fake *fakeChannel) Supports(event Event) bool {
	return event.Type == fake.accept
}

func (fake *fakeChannel) Send(event Event) {
	*fake.delivered = append(*fake.delivered, event.Type)
}
