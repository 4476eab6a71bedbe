package logging

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pharoslog/pharos/config"
)

// Logger names routed to dedicated files by Aggregation.
const (
	PerformanceLoggerName = "performance"
	RequestsLoggerName    = "requests"
)

// Aggregation builds a logger with the multi-file production layout
// under dir:
//
//	app.log          every record at the configured level
//	errors.log       error and above
//	performance.log  records from the "performance" logger
//	requests.log     records from the "requests" logger
//
// File records are JSON; console output follows the configuration.
// Route records to the dedicated files with Named:
//
//	perfLogger := logger.Named(logging.PerformanceLoggerName)
func Aggregation(dir string, cfg *config.Config) (*Logger, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jsonEnc := func() zapcore.Encoder {
		return zapcore.NewJSONEncoder(jsonEncoderConfig(false))
	}

	rotation := cfg.File
	if rotation == nil {
		rotation = config.DefaultFile("")
	}

	var cores []zapcore.Core

	appCore, err := rotatingCore(filepath.Join(dir, "app.log"), jsonEnc(), cfg.Level.ZapLevel(), rotation)
	if err != nil {
		return nil, err
	}
	cores = append(cores, appCore)

	errCore, err := rotatingCore(filepath.Join(dir, "errors.log"), jsonEnc(), zapcore.ErrorLevel, rotation)
	if err != nil {
		return nil, err
	}
	cores = append(cores, errCore)

	if cfg.Performance.Enabled {
		perfCore, err := rotatingCore(filepath.Join(dir, "performance.log"), jsonEnc(), zapcore.InfoLevel, rotation)
		if err != nil {
			return nil, err
		}
		cores = append(cores, routeByName(perfCore, PerformanceLoggerName))
	}

	if cfg.Request.Enabled {
		reqCore, err := rotatingCore(filepath.Join(dir, "requests.log"), jsonEnc(), zapcore.InfoLevel, rotation)
		if err != nil {
			return nil, err
		}
		cores = append(cores, routeByName(reqCore, RequestsLoggerName))
	}

	if cfg.Console.ConsoleEnabled() {
		cores = append(cores, consoleCore(cfg))
	}

	z := zap.New(zapcore.NewTee(cores...))
	if cfg.Name != "" {
		z = z.Named(cfg.Name)
	}
	return &Logger{zap: z}, nil
}

// namedCore forwards records only when the entry's logger name matches
// the configured name or is nested below it.
type namedCore struct {
	zapcore.Core
	name string
}

func routeByName(core zapcore.Core, name string) zapcore.Core {
	return namedCore{Core: core, name: name}
}

func (c namedCore) With(fields []zapcore.Field) zapcore.Core {
	return namedCore{Core: c.Core.With(fields), name: c.name}
}

func (c namedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !matchesLoggerName(ent.LoggerName, c.name) {
		return ce
	}
	if !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// matchesLoggerName reports whether logger equals name or contains it
// as a dotted segment, at any position. Aggregation roots the tree with
// the configured name, so "myservice.performance" must route like
// "performance"; an unnamed root produces names like "performance.db",
// which must route the same way.
func matchesLoggerName(logger, name string) bool {
	if logger == name {
		return true
	}
	if strings.HasPrefix(logger, name+".") {
		return true
	}
	if strings.HasSuffix(logger, "."+name) {
		return true
	}
	return strings.Contains(logger, "."+name+".")
}
