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

func Start() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("start").
			Short("Converge every runner group towards its configured replica count").
			Args(cobra.NoArgs).
			DependsOn(requireRuntime).
			Function(cmdStart).
			BuildWithValidation(),
	)
}

func cmdStart(mgr *manager.Manager, args []string) {
	config := load(mgr)

	result := mgr.Reconciler.Start(context.Background(), config)

	mgr.Publish(events.FromStart(result))
	formaters.Start(result)
}
