package formaters

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/updates"
)

func Start(result *reconcile.StartResult) {
	for _, entry := range result.Started {
		if entry.Reason != "" {
			color.Green("runner %s started (%s)", entry.Name, entry.Reason)
		} else {
			color.Green("runner %s started", entry.Name)
		}
	}

	for _, entry := range result.Restarted {
		color.Yellow("runner %s restarted", entry.Name)
	}

	for _, entry := range result.Running {
		color.Blue("runner %s already running", entry.Name)
	}

	for _, entry := range result.Removed {
		color.Magenta("container %s removed", entry.Name)
	}

	errors(result.Errors)
}

func Stop(result *reconcile.StopResult) {
	for _, entry := range result.Stopped {
		color.Green("runner %s stopped", entry.Name)
	}

	skipped(result.Skipped)
	errors(result.Errors)
}

func Remove(result *reconcile.RemoveResult) {
	for _, entry := range result.Removed {
		color.Green("runner %s removed", entry.Name)
	}

	skipped(result.Skipped)
	errors(result.Errors)
}

func Build(result *reconcile.BuildResult) {
	for _, entry := range result.Built {
		color.Green("image %s built from %s", entry.Image, entry.Dockerfile)
	}

	for _, entry := range result.Skipped {
		color.Yellow("no image to build for %s (%s)", entry.Name, entry.Reason)
	}

	errors(result.Errors)
}

func Update(result *updates.Result) {
	if result.Error != "" {
		color.Red("error: %s", result.Error)
		return
	}

	if !result.UpdateAvailable {
		color.Green("runner image is up to date: v%s", result.CurrentVersion)
		return
	}

	color.Yellow("new version available: %s (current: %s)", result.LatestVersion, result.CurrentVersion)

	if result.Updated {
		color.Green("base_image updated to %s", result.NewImage)
	}
}

func skipped(entries []reconcile.Entry) {
	for _, entry := range entries {
		color.Yellow("runner %s skipped (%s)", entry.Name, entry.Reason)
	}
}

func errors(entries []reconcile.Entry) {
	for _, entry := range entries {
		color.Red("error: %s: %s", entry.Name, entry.Reason)
	}
}

func Deliveries(results map[string]bool) {
	if len(results) == 0 {
		fmt.Println("no providers notified")
		return
	}

	for provider, ok := range results {
		if ok {
			color.Green("notification delivered via %s", provider)
		} else {
			color.Red("notification failed via %s", provider)
		}
	}
}
