package events

import (
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/fleetci/fleetci/pkg/updates"
)

// FromStart flattens a reconciliation pass into lifecycle events, one per
// bucket entry.
func FromStart(result *reconcile.StartResult) []Event {
	var out []Event

	for _, entry := range result.Started {
		out = append(out, New(EVENT_RUNNER_STARTED, entry.Name, entry.Reason, map[string]string{
			"group": entry.Group,
			"image": entry.Image,
		}))
	}

	for _, entry := range result.Restarted {
		out = append(out, New(EVENT_RUNNER_STARTED, entry.Name, "restarted", map[string]string{
			"group": entry.Group,
			"image": entry.Image,
		}))
	}

	for _, entry := range result.Removed {
		out = append(out, New(EVENT_RUNNER_REMOVED, entry.Name, entry.Reason, map[string]string{
			"group": entry.Group,
		}))
	}

	out = append(out, errorEvents(result.Errors)...)

	return out
}

func FromStop(result *reconcile.StopResult) []Event {
	var out []Event

	for _, entry := range result.Stopped {
		out = append(out, New(EVENT_RUNNER_STOPPED, entry.Name, "", map[string]string{
			"group": entry.Group,
		}))
	}

	out = append(out, skippedEvents(static.OPERATION_STOP, result.Skipped)...)
	out = append(out, errorEvents(result.Errors)...)

	return out
}

func FromRemove(result *reconcile.RemoveResult) []Event {
	var out []Event

	for _, entry := range result.Removed {
		out = append(out, New(EVENT_RUNNER_REMOVED, entry.Name, "", map[string]string{
			"group": entry.Group,
		}))
	}

	out = append(out, skippedEvents(static.OPERATION_REMOVE, result.Skipped)...)
	out = append(out, errorEvents(result.Errors)...)

	return out
}

func FromBuild(result *reconcile.BuildResult) []Event {
	var out []Event

	for _, entry := range result.Built {
		out = append(out, New(EVENT_BUILD_COMPLETED, entry.Name, "", map[string]string{
			"image":      entry.Image,
			"dockerfile": entry.Dockerfile,
		}))
	}

	for _, entry := range result.Errors {
		out = append(out, New(EVENT_BUILD_FAILED, entry.Name, entry.Reason, map[string]string{
			"image": entry.Image,
			"error": entry.Reason,
		}))
	}

	return out
}

func FromUpdate(result *updates.Result) []Event {
	var out []Event

	if result.UpdateAvailable {
		out = append(out, New(EVENT_UPDATE_AVAILABLE, "base", "", map[string]string{
			"current_version": result.CurrentVersion,
			"latest_version":  result.LatestVersion,
		}))
	}

	if result.Updated {
		out = append(out, New(EVENT_IMAGE_UPDATED, "base", "", map[string]string{
			"from_version": result.CurrentVersion,
			"to_version":   result.LatestVersion,
			"image":        result.NewImage,
		}))
	}

	if result.Error != "" {
		out = append(out, New(EVENT_UPDATE_ERROR, "base", result.Error, map[string]string{
			"error": result.Error,
		}))
	}

	return out
}

func errorEvents(entries []reconcile.Entry) []Event {
	var out []Event

	for _, entry := range entries {
		out = append(out, New(EVENT_RUNNER_ERROR, entry.Name, entry.Reason, map[string]string{
			"group":     entry.Group,
			"operation": entry.Operation,
			"error":     entry.Reason,
		}))
	}

	return out
}

func skippedEvents(operation string, entries []reconcile.Entry) []Event {
	var out []Event

	for _, entry := range entries {
		out = append(out, New(EVENT_RUNNER_SKIPPED, entry.Name, entry.Reason, map[string]string{
			"group":     entry.Group,
			"operation": operation,
		}))
	}

	return out
}
