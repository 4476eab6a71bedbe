package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "pharos",
	Short:   "Inspect Pharos log files and configuration",
	Version: version,
	Long: `Pharos is a structured logging framework with built-in performance
tracking. This tool inspects the JSON log files it produces and
validates its configuration files.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command and returns any execution error.
// This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(tailCmd)
	RootCmd.AddCommand(validateCmd)
}
