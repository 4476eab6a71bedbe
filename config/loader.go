package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads a logging configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//
// Unset fields are filled from Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, path)
}

// Parse parses configuration data.
//
// The format is determined by the file extension in path, or defaults to
// YAML if the path is empty or has an unknown extension.
func Parse(data []byte, path string) (*Config, error) {
	config := Default()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		// Try YAML by default
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv builds a configuration from environment variables:
//
//	PHAROS_LOG_LEVEL   log level (default "info")
//	PHAROS_LOG_FORMAT  output format (default "text")
//	PHAROS_LOG_NAME    logger name (default "pharos")
//	PHAROS_LOG_DIR     directory for rotating file output (optional)
func FromEnv() (*Config, error) {
	config := Default()

	level, err := ParseLevel(os.Getenv("PHAROS_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	config.Level = level

	format, err := ParseFormat(os.Getenv("PHAROS_LOG_FORMAT"))
	if err != nil {
		return nil, err
	}
	config.Format = format

	config.Name = os.Getenv("PHAROS_LOG_NAME")
	if config.Name == "" {
		config.Name = "pharos"
	}

	if dir := os.Getenv("PHAROS_LOG_DIR"); dir != "" {
		file := DefaultFile(filepath.Join(dir, config.Name+".log"))
		file.Directory = dir
		config.File = file
	}

	return config, nil
}

// applyDefaults fills zero-valued fields after parsing and folds level
// and format aliases onto their canonical values. Values ParseLevel or
// ParseFormat reject are left as-is for Validate to report.
func (c *Config) applyDefaults() {
	normalizeLevel(&c.Level)
	normalizeLevel(&c.Console.Level)
	normalizeFormat(&c.Format)
	normalizeFormat(&c.Console.Format)

	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Console.Stream == "" {
		c.Console.Stream = "stdout"
	}
	if c.File != nil {
		normalizeLevel(&c.File.Level)
		normalizeFormat(&c.File.Format)
		if c.File.MaxSizeMB == 0 {
			c.File.MaxSizeMB = 10
		}
		if c.File.MaxBackups == 0 {
			c.File.MaxBackups = 5
		}
	}
	if c.Performance.ThresholdMS == 0 {
		c.Performance.ThresholdMS = 1000
	}
	if c.Performance.IntervalSeconds == 0 {
		c.Performance.IntervalSeconds = 60
	}
	if c.Request.SensitiveHeaders == nil {
		c.Request.SensitiveHeaders = []string{"authorization", "cookie"}
	}
}

// normalizeLevel folds a set level onto its canonical value. Empty
// stays empty so sink-level overrides keep falling back to root.
func normalizeLevel(l *Level) {
	if *l == "" {
		return
	}
	if parsed, err := ParseLevel(string(*l)); err == nil {
		*l = parsed
	}
}

func normalizeFormat(f *Format) {
	if *f == "" {
		return
	}
	if parsed, err := ParseFormat(string(*f)); err == nil {
		*f = parsed
	}
}
