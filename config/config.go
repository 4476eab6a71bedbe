// Package config provides configuration types and parsing for the Pharos
// logging framework.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a log severity level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// ParseLevel parses a level string (case-insensitive). "warning" and
// "critical" are accepted as aliases for warn and fatal.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal", "critical":
		return LevelFatal, nil
	default:
		return "", fmt.Errorf("unknown log level: %q", s)
	}
}

// ZapLevel converts the level to its zapcore equivalent. The aliases
// ParseLevel accepts map like their canonical levels; unknown levels
// map to info.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn, "warning":
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal, "critical":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Format is a log output format.
type Format string

const (
	// FormatText renders human-readable single-line output.
	FormatText Format = "text"

	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"

	// FormatStructured is JSON with caller and function information added.
	FormatStructured Format = "structured"
)

// ParseFormat parses a format string (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "structured":
		return FormatStructured, nil
	default:
		return "", fmt.Errorf("unknown log format: %q", s)
	}
}

// Config is the root configuration for Pharos logging.
//
// Example YAML:
//
//	level: info
//	format: text
//	name: myservice
//	console:
//	  stream: stdout
//	  color: true
//	file:
//	  enabled: true
//	  directory: /var/log/myservice
//	  maxSizeMb: 10
//	  maxBackups: 5
//	performance:
//	  thresholdMs: 1000
type Config struct {
	// Level is the minimum severity emitted by the logger.
	Level Level `json:"level,omitempty" yaml:"level,omitempty"`

	// Format selects the default output format for all sinks.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// Name is the logger name; it also names the default log file.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Console configures console output.
	Console ConsoleConfig `json:"console,omitempty" yaml:"console,omitempty"`

	// File configures rotating file output. Nil disables file output.
	File *FileConfig `json:"file,omitempty" yaml:"file,omitempty"`

	// Performance configures the performance tracker.
	Performance PerformanceConfig `json:"performance,omitempty" yaml:"performance,omitempty"`

	// Request configures HTTP request logging.
	Request RequestConfig `json:"request,omitempty" yaml:"request,omitempty"`

	// Training configures training event logging.
	Training TrainingConfig `json:"training,omitempty" yaml:"training,omitempty"`

	// TrackUserID, TrackSessionID and TrackRequestID are reserved for
	// collaborating context propagators; emission includes a correlation
	// field whenever the sample carries the identifier.
	TrackUserID    bool `json:"trackUserId,omitempty" yaml:"trackUserId,omitempty"`
	TrackSessionID bool `json:"trackSessionId,omitempty" yaml:"trackSessionId,omitempty"`
	TrackRequestID bool `json:"trackRequestId,omitempty" yaml:"trackRequestId,omitempty"`

	// ExtraFields are attached to every record emitted by loggers built
	// from this config.
	ExtraFields map[string]string `json:"extraFields,omitempty" yaml:"extraFields,omitempty"`
}

// ConsoleConfig configures console output.
type ConsoleConfig struct {
	// Enabled turns console output on. Defaults to true.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Stream selects the target stream: "stdout" (default) or "stderr".
	Stream string `json:"stream,omitempty" yaml:"stream,omitempty"`

	// Level overrides the root level for console output.
	Level Level `json:"level,omitempty" yaml:"level,omitempty"`

	// Format overrides the root format for console output.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// Color enables colored level names when the stream is a terminal.
	// Defaults to true for text format on stdout.
	Color *bool `json:"color,omitempty" yaml:"color,omitempty"`
}

// FileConfig configures rotating file output. Rotation is delegated to
// lumberjack; sizes are megabytes and ages are days.
type FileConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Filename is the full path of the log file. Takes precedence over
	// Directory.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// Directory holds log files named after the logger when Filename is
	// not set.
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`

	// Level overrides the root level for file output.
	Level Level `json:"level,omitempty" yaml:"level,omitempty"`

	// Format overrides the root format for file output.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int `json:"maxSizeMb,omitempty" yaml:"maxSizeMb,omitempty"`

	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `json:"maxBackups,omitempty" yaml:"maxBackups,omitempty"`

	// MaxAgeDays is the number of days rotated files are retained.
	MaxAgeDays int `json:"maxAgeDays,omitempty" yaml:"maxAgeDays,omitempty"`

	// Compress gzips rotated files.
	Compress bool `json:"compress,omitempty" yaml:"compress,omitempty"`
}

// PerformanceConfig configures the performance tracker.
//
// TrackMemory, TrackCPU, TrackDisk and TrackNetwork are reserved for
// collaborating resource monitors; the recording path does not gate on
// them.
type PerformanceConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ThresholdMS is the duration in milliseconds at or above which a
	// sample is eagerly emitted to the log sink at record time.
	ThresholdMS float64 `json:"thresholdMs,omitempty" yaml:"thresholdMs,omitempty"`

	// IntervalSeconds is the reporting interval for periodic monitors.
	IntervalSeconds float64 `json:"intervalSeconds,omitempty" yaml:"intervalSeconds,omitempty"`

	TrackMemory  bool `json:"trackMemory,omitempty" yaml:"trackMemory,omitempty"`
	TrackCPU     bool `json:"trackCpu,omitempty" yaml:"trackCpu,omitempty"`
	TrackDisk    bool `json:"trackDisk,omitempty" yaml:"trackDisk,omitempty"`
	TrackNetwork bool `json:"trackNetwork,omitempty" yaml:"trackNetwork,omitempty"`
}

// RequestConfig configures HTTP request logging.
type RequestConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	LogHeaders      bool `json:"logHeaders,omitempty" yaml:"logHeaders,omitempty"`
	LogBody         bool `json:"logBody,omitempty" yaml:"logBody,omitempty"`
	LogQueryParams  bool `json:"logQueryParams,omitempty" yaml:"logQueryParams,omitempty"`
	LogResponseTime bool `json:"logResponseTime,omitempty" yaml:"logResponseTime,omitempty"`
	LogStatusCodes  bool `json:"logStatusCodes,omitempty" yaml:"logStatusCodes,omitempty"`

	// SensitiveHeaders are removed before headers are logged. Matching is
	// case-insensitive.
	SensitiveHeaders []string `json:"sensitiveHeaders,omitempty" yaml:"sensitiveHeaders,omitempty"`
}

// TrainingConfig configures training event logging.
type TrainingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	LogMetrics         bool `json:"logMetrics,omitempty" yaml:"logMetrics,omitempty"`
	LogCheckpoints     bool `json:"logCheckpoints,omitempty" yaml:"logCheckpoints,omitempty"`
	LogValidation      bool `json:"logValidation,omitempty" yaml:"logValidation,omitempty"`
	LogHyperparameters bool `json:"logHyperparameters,omitempty" yaml:"logHyperparameters,omitempty"`
}

// Default returns a configuration with the standard defaults: info level,
// text format, console output to stdout, no file output.
func Default() *Config {
	return &Config{
		Level:       LevelInfo,
		Format:      FormatText,
		Console:     DefaultConsole(),
		Performance: DefaultPerformance(),
		Request:     DefaultRequest(),
		Training:    DefaultTraining(),
	}
}

// DefaultConsole returns the default console configuration.
func DefaultConsole() ConsoleConfig {
	return ConsoleConfig{Stream: "stdout"}
}

// DefaultFile returns the default file configuration for the given path.
func DefaultFile(filename string) *FileConfig {
	return &FileConfig{
		Enabled:    true,
		Filename:   filename,
		MaxSizeMB:  10,
		MaxBackups: 5,
	}
}

// DefaultPerformance returns the default performance configuration:
// enabled, with a 1000ms eager-emission threshold.
func DefaultPerformance() PerformanceConfig {
	return PerformanceConfig{
		Enabled:         true,
		ThresholdMS:     1000,
		IntervalSeconds: 60,
		TrackMemory:     true,
		TrackCPU:        true,
	}
}

// DefaultRequest returns the default request logging configuration.
func DefaultRequest() RequestConfig {
	return RequestConfig{
		Enabled:          true,
		LogQueryParams:   true,
		LogResponseTime:  true,
		LogStatusCodes:   true,
		SensitiveHeaders: []string{"authorization", "cookie"},
	}
}

// DefaultTraining returns the default training logging configuration.
func DefaultTraining() TrainingConfig {
	return TrainingConfig{
		Enabled:            true,
		LogMetrics:         true,
		LogCheckpoints:     true,
		LogValidation:      true,
		LogHyperparameters: true,
	}
}

// ConsoleEnabled reports whether console output is on (default true).
func (c ConsoleConfig) ConsoleEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// ColorEnabled reports whether colored output is requested (default true;
// the logger still disables color when the stream is not a terminal).
func (c ConsoleConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// EffectiveLevel returns the console level, falling back to root.
func (c ConsoleConfig) EffectiveLevel(root Level) Level {
	if c.Level != "" {
		return c.Level
	}
	return root
}

// EffectiveFormat returns the console format, falling back to root.
func (c ConsoleConfig) EffectiveFormat(root Format) Format {
	if c.Format != "" {
		return c.Format
	}
	return root
}

// EffectiveLevel returns the file level, falling back to root.
func (f *FileConfig) EffectiveLevel(root Level) Level {
	if f.Level != "" {
		return f.Level
	}
	return root
}

// EffectiveFormat returns the file format, falling back to root.
func (f *FileConfig) EffectiveFormat(root Format) Format {
	if f.Format != "" {
		return f.Format
	}
	return root
}
