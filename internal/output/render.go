// Package output renders log entries and performance summaries for the
// CLI.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pharoslog/pharos/internal/logquery"
	"github.com/pharoslog/pharos/perf"
)

// Renderer writes human-readable output for CLI commands.
type Renderer struct {
	w      io.Writer
	scheme *ColorScheme
}

// NewRenderer creates a renderer. When noColor is set all output is
// plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Renderer{w: w, scheme: scheme}
}

// Entry renders one log entry as a single line.
func (r *Renderer) Entry(e logquery.Entry) {
	level := strings.ToUpper(e.Level)
	if level == "" {
		level = "INFO"
	}

	ts := ""
	if !e.Timestamp.IsZero() {
		ts = r.scheme.Timestamp.Sprint(e.Timestamp.Format(time.RFC3339)) + " "
	}

	name := ""
	if e.Logger != "" {
		name = r.scheme.Logger.Sprintf("[%s] ", e.Logger)
	}

	suffix := ""
	if e.DurationSeconds > 0 {
		suffix = " " + r.scheme.Duration.Sprintf("(%.3fs)", e.DurationSeconds)
	}

	fmt.Fprintf(r.w, "%s%-5s %s%s%s\n",
		ts, r.scheme.LevelColor(e.Level).Sprint(level), name, e.Message, suffix)
}

// Stats renders a per-operation statistics table.
func (r *Renderer) Stats(operation string, stats perf.Statistics) {
	fmt.Fprintf(r.w, "%s\n", r.scheme.Logger.Sprint(operation))
	fmt.Fprintf(r.w, "  count: %d\n", stats.Count)
	fmt.Fprintf(r.w, "  total: %s\n", r.scheme.Duration.Sprintf("%.3fs", stats.TotalDuration))
	fmt.Fprintf(r.w, "  avg:   %s\n", r.scheme.Duration.Sprintf("%.3fs", stats.AvgDuration))
	fmt.Fprintf(r.w, "  min:   %.3fs  max: %.3fs\n", stats.MinDuration, stats.MaxDuration)
	fmt.Fprintf(r.w, "  p95:   %.3fs  p99: %.3fs\n", stats.P95Duration, stats.P99Duration)
}
