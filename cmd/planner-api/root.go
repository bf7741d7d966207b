package main

import (
	"github.com/spf13/cobra"

	"github.com/kubev2v/vdi-migration-planner/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "planner-api",
	Short: "planner-api serves VDI migration assessments over HTTP.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cli.NewCmdVersion())
}
