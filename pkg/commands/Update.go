package commands

import (
	"context"
	"fmt"

	"github.com/fleetci/fleetci/internal/helpers"
	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/formaters"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Update() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("update").
			Short("Check for a newer runner release and optionally pin it").
			Args(cobra.NoArgs).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().Bool("apply", false, "Rewrite the base image pin without prompting")
			}).
			DependsOn(requireRuntime).
			Function(cmdUpdate).
			BuildWithValidation(),
	)
}

// cmdUpdate walks the interactive chain: check, pin, rebuild, redeploy. Each
// step past the check asks before acting unless --apply was given.
func cmdUpdate(mgr *manager.Manager, args []string) {
	ctx := context.Background()
	config := load(mgr)

	result := mgr.Checker.Check(ctx, config, false)

	mgr.Publish(events.FromUpdate(result))
	formaters.Update(result)

	if result.Error != "" || !result.UpdateAvailable {
		return
	}

	apply := viper.GetBool("apply")

	if !apply && !helpers.Confirm(fmt.Sprintf("Update base_image to version %s in %s?", result.LatestVersion, static.DEFAULT_CONFIG_FILE)) {
		fmt.Println("update cancelled")
		return
	}

	applied := mgr.Checker.Check(ctx, config, true)

	mgr.Publish(events.FromUpdate(applied))
	formaters.Update(applied)

	if applied.Error != "" || !applied.Updated {
		return
	}

	if !apply && !helpers.Confirm(fmt.Sprintf("Build the runner images with %s?", applied.NewImage)) {
		return
	}

	// Pick up the rewritten pin before building.
	config = load(mgr)

	buildResult := mgr.Reconciler.Build(ctx, config, false)

	mgr.Publish(events.FromBuild(buildResult))
	formaters.Build(buildResult)

	if len(buildResult.Built) == 0 {
		return
	}

	if !apply && !helpers.Confirm("Deploy the runners with the new images?") {
		return
	}

	startResult := mgr.Reconciler.Start(ctx, config)

	mgr.Publish(events.FromStart(startResult))
	formaters.Start(startResult)
}
