package commands

import (
	"context"

	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/events"
	"github.com/fleetci/fleetci/pkg/formaters"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
)

func Stop() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("stop").
			Short("Stop all running runner containers").
			Args(cobra.NoArgs).
			DependsOn(requireRuntime).
			Function(cmdStop).
			BuildWithValidation(),
	)
}

func cmdStop(mgr *manager.Manager, args []string) {
	config := load(mgr)

	result := mgr.Reconciler.Stop(context.Background(), config)

	mgr.Publish(events.FromStop(result))
	formaters.Stop(result)
}
