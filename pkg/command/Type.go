package command

import (
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/spf13/cobra"
)

type Command struct {
	Parent    string
	Name      string
	Short     string
	Args      func(*cobra.Command, []string) error
	Flags     func(*cobra.Command)
	Condition func(*manager.Manager) bool
	Function  func(*manager.Manager, []string)
	DependsOn []func(*manager.Manager, []string)
}
