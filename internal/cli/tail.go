package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharoslog/pharos/internal/logquery"
	"github.com/pharoslog/pharos/internal/output"
)

var tailCmd = &cobra.Command{
	Use:   "tail <logfile>",
	Short: "Pretty-print the last records of a JSON log file",
	Long: `Render the last records of a JSON log file as colorized
single-line output.

Examples:
  pharos tail logs/app.log
  pharos tail logs/app.log -n 50 --level error
  pharos tail logs/errors.log --logger performance --no-color`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTail(cmd, args[0])
	},
}

func init() {
	tailCmd.Flags().IntP("lines", "n", 20, "Number of records to show")
	tailCmd.Flags().StringP("level", "l", "", "Only show records at this level")
	tailCmd.Flags().String("logger", "", "Only show records from this logger")
	tailCmd.Flags().String("since", "", "Only show records newer than this age (e.g. 30m, 1h)")
	tailCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runTail(cmd *cobra.Command, path string) error {
	lines, _ := cmd.Flags().GetInt("lines")
	level, _ := cmd.Flags().GetString("level")
	logger, _ := cmd.Flags().GetString("logger")
	sinceStr, _ := cmd.Flags().GetString("since")
	noColor, _ := cmd.Flags().GetBool("no-color")

	filter := logquery.Filter{
		Level:  level,
		Logger: logger,
		Limit:  lines,
	}
	if sinceStr != "" {
		age, err := time.ParseDuration(sinceStr)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = time.Now().UTC().Add(-age)
	}

	entries, err := logquery.ScanFile(path, filter)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), noColor || !isStdoutTerminal())
	for _, e := range entries {
		renderer.Entry(e)
	}
	return nil
}
