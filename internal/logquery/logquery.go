// Package logquery scans JSON-lines log files and extracts structured
// entries for the CLI commands.
package logquery

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// Entry is one parsed log record. Duration fields are zero when the
// record carries no performance data.
type Entry struct {
	Timestamp time.Time
	Level     string
	Logger    string
	Message   string

	Operation       string
	DurationSeconds float64

	// Raw is the original JSON line.
	Raw string
}

// Filter narrows a scan. Zero values match everything.
type Filter struct {
	// Level keeps records at exactly this level.
	Level string

	// Logger keeps records whose logger name matches exactly.
	Logger string

	// Operation keeps records for this performance operation.
	Operation string

	// Since keeps records at or after this instant.
	Since time.Time

	// Limit keeps the last N matching records. Zero means no limit.
	Limit int
}

// ScanFile scans a JSON-lines log file. Lines that are not valid JSON
// objects are skipped.
func ScanFile(path string, filter Filter) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	return Scan(f, filter)
}

// Scan scans JSON-lines log records from r, returning entries matching
// the filter in file order.
func Scan(r io.Reader, filter Filter) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !gjson.Valid(line) {
			continue
		}

		entry := parseLine(line)
		if !filter.matches(entry) {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log records: %w", err)
	}

	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[len(entries)-filter.Limit:]
	}
	return entries, nil
}

func parseLine(line string) Entry {
	entry := Entry{
		Level:     gjson.Get(line, "level").String(),
		Logger:    gjson.Get(line, "logger").String(),
		Message:   gjson.Get(line, "message").String(),
		Operation: gjson.Get(line, "operation").String(),
		Raw:       line,
	}

	if ts := gjson.Get(line, "timestamp").String(); ts != "" {
		if parsed, err := parseTimestamp(ts); err == nil {
			entry.Timestamp = parsed
		}
	}

	if secs := gjson.Get(line, "duration_seconds"); secs.Exists() {
		entry.DurationSeconds = secs.Float()
	} else if ms := gjson.Get(line, "duration_ms"); ms.Exists() {
		entry.DurationSeconds = ms.Float() / 1000
	}

	return entry
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}

func (f Filter) matches(e Entry) bool {
	if f.Level != "" && e.Level != f.Level {
		return false
	}
	if f.Logger != "" && e.Logger != f.Logger {
		return false
	}
	if f.Operation != "" && e.Operation != f.Operation {
		return false
	}
	if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
		return false
	}
	return true
}
