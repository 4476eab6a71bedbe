package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "pharos.yaml", `
level: debug
format: json
name: svc
file:
  enabled: true
  directory: /var/log/svc
performance:
  enabled: true
  thresholdMs: 250
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level != LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
	if cfg.Name != "svc" {
		t.Errorf("Name = %q, want svc", cfg.Name)
	}
	if cfg.File == nil || cfg.File.Directory != "/var/log/svc" {
		t.Errorf("File = %+v, want directory /var/log/svc", cfg.File)
	}
	if cfg.Performance.ThresholdMS != 250 {
		t.Errorf("ThresholdMS = %v, want 250", cfg.Performance.ThresholdMS)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "pharos.json", `{"level":"warn","name":"api"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Level != LevelWarn {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Name != "api" {
		t.Errorf("Name = %q, want api", cfg.Name)
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeFile(t, "pharos.yaml", `
file:
  enabled: true
  filename: /tmp/out.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Level != LevelInfo {
		t.Errorf("Level = %v, want info default", cfg.Level)
	}
	if cfg.File.MaxSizeMB != 10 || cfg.File.MaxBackups != 5 {
		t.Errorf("File rotation defaults = %d/%d, want 10/5", cfg.File.MaxSizeMB, cfg.File.MaxBackups)
	}
	if cfg.Performance.ThresholdMS != 1000 {
		t.Errorf("ThresholdMS = %v, want 1000 default", cfg.Performance.ThresholdMS)
	}
	if len(cfg.Request.SensitiveHeaders) == 0 {
		t.Error("SensitiveHeaders default missing")
	}
}

func TestLoad_NormalizesAliases(t *testing.T) {
	path := writeFile(t, "pharos.yaml", `
level: warning
console:
  level: CRITICAL
file:
  enabled: true
  filename: /tmp/out.log
  level: Warning
  format: JSON
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level != LevelWarn {
		t.Errorf("Level = %q, want %q", cfg.Level, LevelWarn)
	}
	if got := cfg.Level.ZapLevel(); got != zapcore.WarnLevel {
		t.Errorf("ZapLevel() = %v, want warn", got)
	}
	if cfg.Console.Level != LevelFatal {
		t.Errorf("Console.Level = %q, want %q", cfg.Console.Level, LevelFatal)
	}
	if cfg.File.Level != LevelWarn {
		t.Errorf("File.Level = %q, want %q", cfg.File.Level, LevelWarn)
	}
	if cfg.File.Format != FormatJSON {
		t.Errorf("File.Format = %q, want %q", cfg.File.Format, FormatJSON)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeFile(t, "pharos.yaml", "level: loud\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid level: expected error, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "pharos.yaml", "level: [broken\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML: expected error, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/pharos.yaml"); err == nil {
		t.Error("Load() on missing file: expected error, got nil")
	}
}

func TestParse_UnknownExtensionFallsBackToYAML(t *testing.T) {
	cfg, err := Parse([]byte("level: error\n"), "pharos.conf")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Level != LevelError {
		t.Errorf("Level = %v, want error", cfg.Level)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PHAROS_LOG_LEVEL", "debug")
	t.Setenv("PHAROS_LOG_FORMAT", "json")
	t.Setenv("PHAROS_LOG_NAME", "envsvc")
	t.Setenv("PHAROS_LOG_DIR", "/var/log/envsvc")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Level != LevelDebug || cfg.Format != FormatJSON || cfg.Name != "envsvc" {
		t.Errorf("FromEnv() = %v/%v/%q, want debug/json/envsvc", cfg.Level, cfg.Format, cfg.Name)
	}
	if cfg.File == nil || cfg.File.Filename != "/var/log/envsvc/envsvc.log" {
		t.Errorf("File = %+v, want filename under PHAROS_LOG_DIR", cfg.File)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PHAROS_LOG_LEVEL", "")
	t.Setenv("PHAROS_LOG_FORMAT", "")
	t.Setenv("PHAROS_LOG_NAME", "")
	t.Setenv("PHAROS_LOG_DIR", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Level != LevelInfo || cfg.Name != "pharos" {
		t.Errorf("FromEnv() defaults = %v/%q, want info/pharos", cfg.Level, cfg.Name)
	}
	if cfg.File != nil {
		t.Error("File should be nil without PHAROS_LOG_DIR")
	}
}

func TestFromEnv_InvalidLevel(t *testing.T) {
	t.Setenv("PHAROS_LOG_LEVEL", "loud")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() with invalid level: expected error, got nil")
	}
}
