package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pharoslog/pharos/internal/logquery"
	"github.com/pharoslog/pharos/internal/output"
	"github.com/pharoslog/pharos/perf"
)

var statsCmd = &cobra.Command{
	Use:   "stats <logfile>",
	Short: "Summarize performance records from a JSON log file",
	Long: `Compute per-operation statistics (count, total, average, min, max,
p95, p99) from the performance records in a JSON log file.

Examples:
  pharos stats logs/performance.log
  pharos stats logs/performance.log --operation db_query
  pharos stats logs/performance.log --since 1h --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, args[0])
	},
}

func init() {
	statsCmd.Flags().StringP("operation", "o", "", "Only include this operation")
	statsCmd.Flags().String("since", "", "Only include records newer than this age (e.g. 30m, 1h)")
	statsCmd.Flags().Bool("json", false, "Emit statistics as JSON")
	statsCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runStats(cmd *cobra.Command, path string) error {
	operation, _ := cmd.Flags().GetString("operation")
	sinceStr, _ := cmd.Flags().GetString("since")
	asJSON, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	filter := logquery.Filter{Operation: operation}
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

	byOperation := make(map[string][]perf.Sample)
	for _, e := range entries {
		if e.Operation == "" {
			continue
		}
		byOperation[e.Operation] = append(byOperation[e.Operation], perf.Sample{
			Operation: e.Operation,
			Duration:  time.Duration(e.DurationSeconds * float64(time.Second)),
			Timestamp: e.Timestamp,
		})
	}

	if len(byOperation) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no performance records found")
		return nil
	}

	operations := make([]string, 0, len(byOperation))
	for op := range byOperation {
		operations = append(operations, op)
	}
	sort.Strings(operations)

	if asJSON {
		summary := make(map[string]perf.Statistics, len(operations))
		for _, op := range operations {
			summary[op] = perf.Compute(byOperation[op])
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), noColor || !isStdoutTerminal())
	for _, op := range operations {
		renderer.Stats(op, perf.Compute(byOperation[op]))
	}
	return nil
}

func isStdoutTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
