package commands

import (
	"context"

	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/formaters"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Build() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("build").
			Short("Build runner images for groups with a build spec").
			Args(cobra.NoArgs).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().Bool("quiet", false, "Suppress build output")
			}).
			DependsOn(requireRuntime).
			Function(cmdBuild).
			BuildWithValidation(),
	)
}

func cmdBuild(mgr *manager.Manager, args []string) {
	config := load(mgr)

	result := mgr.Reconciler.Build(context.Background(), config, viper.GetBool("quiet"))

	mgr.Publish(events.FromBuild(result))
	formaters.Build(result)
}
