package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const appLog = `{"level":"info","timestamp":"2026-08-20T10:00:00.000Z","logger":"app","message":"starting"}
{"level":"warn","timestamp":"2026-08-20T10:00:01.000Z","logger":"app","message":"disk almost full"}
{"level":"error","timestamp":"2026-08-20T10:00:02.000Z","logger":"app","message":"boom"}
{"level":"info","timestamp":"2026-08-20T10:00:03.000Z","logger":"performance","message":"Performance: query took 1.500s","operation":"query","duration_seconds":1.5}
`

func writeAppLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(appLog), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTailCommand(t *testing.T) {
	path := writeAppLog(t)

	out, err := executeCommand("tail", path, "--no-color")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}

	for _, want := range []string{"starting", "disk almost full", "boom", "(1.500s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("tail output missing %q:\n%s", want, out)
		}
	}
}

func TestTailCommand_Lines(t *testing.T) {
	path := writeAppLog(t)

	out, err := executeCommand("tail", path, "-n", "2", "--no-color")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if strings.Contains(out, "starting") {
		t.Errorf("tail -n 2 shows records outside the tail:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("tail -n 2 missing the most recent records:\n%s", out)
	}
}

func TestTailCommand_LevelFilter(t *testing.T) {
	path := writeAppLog(t)

	out, err := executeCommand("tail", path, "--level", "error", "--no-color")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("tail --level error missing the error record:\n%s", out)
	}
	if strings.Contains(out, "starting") {
		t.Errorf("tail --level error shows non-error records:\n%s", out)
	}
}

func TestTailCommand_LoggerFilter(t *testing.T) {
	path := writeAppLog(t)

	out, err := executeCommand("tail", path, "--logger", "performance", "--no-color")
	if err != nil {
		t.Fatalf("tail error = %v", err)
	}
	if !strings.Contains(out, "query took") {
		t.Errorf("tail --logger performance missing the performance record:\n%s", out)
	}
	if strings.Contains(out, "boom") {
		t.Errorf("tail --logger performance shows other loggers:\n%s", out)
	}
}

func TestTailCommand_MissingFile(t *testing.T) {
	if _, err := executeCommand("tail", "/nonexistent/app.log"); err == nil {
		t.Error("tail on missing file: expected error, got nil")
	}
}
