package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fleetci/fleetci/pkg/command"
	"github.com/fleetci/fleetci/pkg/manager"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Commands []command.Command

func PreloadCommands() {
	Build()
	Start()
	Stop()
	Remove()
	Ps()
	Update()
	Scheduler()
	Webhook()
	Version()
}

func Run(mgr *manager.Manager, c *cobra.Command) {
	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Printf("error: %s\n\n", err)
		_ = c.Usage()
		return nil
	})

	c.SetArgs(os.Args[1:])

	c.Run = func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Printf("unknown command: %s\n", strings.Join(args, " "))
		}
		_ = cmd.Usage()
	}

	for _, cmd := range Commands {
		cmd := cmd

		cobraCmd := &cobra.Command{
			Use:   cmd.Name,
			Short: cmd.Short,
			Args:  cmd.Args,
			PreRunE: func(c *cobra.Command, args []string) error {
				if !cmd.Condition(mgr) {
					return fmt.Errorf("condition failed for command %s", c.Use)
				}

				for _, dep := range cmd.DependsOn {
					dep(mgr, args)
				}

				return nil
			},
			Run: func(c *cobra.Command, args []string) {
				c.Flags().VisitAll(func(flag *pflag.Flag) {
					if err := viper.BindPFlag(flag.Name, flag); err != nil {
						fmt.Printf("warning: failed to bind flag '%s': %s\n", flag.Name, err)
						os.Exit(1)
					}
				})

				cmd.Function(mgr, args)
			},
		}

		cmd.SetFlags(cobraCmd)

		if cmd.Parent == static.PROJECT || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.Parent)

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Printf("warning: parent command '%s' not found for '%s'\n", cmd.Parent, cmd.Name)
			}
		}
	}

	_ = c.Execute()
}

func SetupGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("config", static.DEFAULT_CONFIG_FILE, "Desired state configuration file")
	rootCmd.PersistentFlags().String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error, dpanic, panic, fatal")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
