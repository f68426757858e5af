package commands

import (
	"context"

	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/formaters"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
)

func Ps() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("ps").
			Short("List configured runners and their observed status").
			Args(cobra.NoArgs).
			DependsOn(requireRuntime).
			Function(cmdPs).
			BuildWithValidation(),
	)
}

func cmdPs(mgr *manager.Manager, args []string) {
	config := load(mgr)

	result := mgr.Reconciler.List(context.Background(), config)

	formaters.Ps(result)
}
