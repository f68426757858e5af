package command

import (
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   static.PROJECT,
		Short: "Declarative CI runner fleet manager",
	}
}

func (command Command) GetName() string {
	return command.Name
}

func (command Command) GetParent() string { return command.Parent }

func (command Command) SetFlags(cmd *cobra.Command) {
	command.Flags(cmd)
}

func (command Command) GetArgs() func(*cobra.Command, []string) error {
	return command.Args
}

func (command Command) GetCondition(mgr *manager.Manager) bool {
	return command.Condition(mgr)
}

func (command Command) GetFunction() func(*manager.Manager, []string) {
	return command.Function
}

func (command Command) GetDependsOn() []func(*manager.Manager, []string) {
	return command.DependsOn
}

func EmptyFlag(cmd *cobra.Command) {}

func EmptyCondition(mgr *manager.Manager) bool { return true }

func EmptyFunction(mgr *manager.Manager, args []string) {}
