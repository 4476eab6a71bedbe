package logging

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pharoslog/pharos/config"
)

// Logger is a leveled, structured logger backed by zap.
type Logger struct {
	zap *zap.Logger
}

// New builds a logger from the given configuration. A nil config uses
// config.Default().
func New(cfg *config.Config) (*Logger, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	core, err := buildCore(cfg)
	if err != nil {
		return nil, err
	}

	var opts []zap.Option
	if usesStructured(cfg) {
		opts = append(opts, zap.AddCaller())
	}

	z := zap.New(core, opts...)
	if len(cfg.ExtraFields) > 0 {
		fields := make([]zap.Field, 0, len(cfg.ExtraFields))
		for k, v := range cfg.ExtraFields {
			fields = append(fields, zap.String(k, v))
		}
		z = z.With(fields...)
	}
	if cfg.Name != "" {
		z = z.Named(cfg.Name)
	}

	return &Logger{zap: z}, nil
}

// Setup builds a standard logger for a named component: console output,
// debug level when debug is set, and rotating file output under logDir
// when logDir is non-empty. It is the convenience path; use New for
// full control.
func Setup(name, logDir string, debug bool) (*Logger, error) {
	cfg := config.Default()
	cfg.Name = name
	if debug {
		cfg.Level = config.LevelDebug
	}
	if logDir != "" {
		cfg.File = config.DefaultFile(filepath.Join(logDir, name+".log"))
		cfg.File.Directory = logDir
	}

	return New(cfg)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs a message at info level.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs a message at error level.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Fatal logs a message at fatal level and exits the process.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.zap.Fatal(msg, fields...) }

// With returns a child logger that always carries the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...)}
}

// Named returns a child logger with the given name segment appended.
// Under Aggregation, names route records to dedicated files.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name)}
}

// Sync flushes buffered entries. Call before shutdown.
func (l *Logger) Sync() error { return l.zap.Sync() }

// Zap exposes the underlying zap logger for collaborators that speak
// zap directly, such as perf.NewZapSink.
func (l *Logger) Zap() *zap.Logger { return l.zap }

// FromZap wraps an existing zap logger in the facade type.
func FromZap(z *zap.Logger) *Logger { return &Logger{zap: z} }

func usesStructured(cfg *config.Config) bool {
	if cfg.Console.EffectiveFormat(cfg.Format) == config.FormatStructured {
		return true
	}
	if cfg.File != nil && cfg.File.Enabled &&
		cfg.File.EffectiveFormat(cfg.Format) == config.FormatStructured {
		return true
	}
	return false
}
