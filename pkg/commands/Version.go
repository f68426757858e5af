package commands

import (
	"fmt"

	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent(static.PROJECT).
			Name("version").
			Short("Print the client version").
			Args(cobra.NoArgs).
			Function(func(mgr *manager.Manager, args []string) {
				fmt.Println(mgr.Version.ToString())
			}).
			BuildWithValidation(),
	)
}
