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

func Remove() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("remove").
			Short("Deregister and remove all runner containers").
			Args(cobra.NoArgs).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
			}).
			DependsOn(requireRuntime).
			Function(cmdRemove).
			BuildWithValidation(),
	)
}

func cmdRemove(mgr *manager.Manager, args []string) {
	config := load(mgr)

	if !viper.GetBool("yes") && !helpers.Confirm("Remove all configured runners?") {
		fmt.Println("removal cancelled")
		return
	}

	result := mgr.Reconciler.Remove(context.Background(), config)

	mgr.Publish(events.FromRemove(result))
	formaters.Remove(result)
}
