package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kubev2v/vdi-migration-planner/internal/cli"
)

func main() {
	command := NewPlannerCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPlannerCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner [flags] [options]",
		Short: "planner estimates the cost and effort of moving virtual desktops to the cloud.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdAssess())
	cmd.AddCommand(cli.NewCmdCatalog())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
