package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pharoslog/pharos/config"
)

// buildCore assembles the zapcore tree for a configuration: a console
// core, a rotating file core, or both under a tee.
func buildCore(cfg *config.Config) (zapcore.Core, error) {
	var cores []zapcore.Core

	if cfg.Console.ConsoleEnabled() {
		cores = append(cores, consoleCore(cfg))
	}

	if cfg.File != nil && cfg.File.Enabled {
		fc, err := fileCore(cfg)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fc)
	}

	switch len(cores) {
	case 0:
		return zapcore.NewNopCore(), nil
	case 1:
		return cores[0], nil
	default:
		return zapcore.NewTee(cores...), nil
	}
}

func consoleCore(cfg *config.Config) zapcore.Core {
	stream := os.Stdout
	if cfg.Console.Stream == "stderr" {
		stream = os.Stderr
	}

	format := cfg.Console.EffectiveFormat(cfg.Format)
	useColor := format == config.FormatText &&
		cfg.Console.ColorEnabled() &&
		(isatty.IsTerminal(stream.Fd()) || isatty.IsCygwinTerminal(stream.Fd()))

	level := cfg.Console.EffectiveLevel(cfg.Level).ZapLevel()
	return zapcore.NewCore(
		newEncoder(format, useColor),
		zapcore.Lock(stream),
		zap.NewAtomicLevelAt(level),
	)
}

func fileCore(cfg *config.Config) (zapcore.Core, error) {
	f := cfg.File

	filename := f.Filename
	if filename == "" {
		name := cfg.Name
		if name == "" {
			name = "pharos"
		}
		filename = filepath.Join(f.Directory, name+".log")
	}

	enc := newEncoder(f.EffectiveFormat(cfg.Format), false)
	return rotatingCore(filename, enc, f.EffectiveLevel(cfg.Level).ZapLevel(), f)
}

// rotatingCore builds a lumberjack-backed core for the given file.
func rotatingCore(filename string, enc zapcore.Encoder, level zapcore.Level, f *config.FileConfig) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    f.MaxSizeMB,
		MaxBackups: f.MaxBackups,
		MaxAge:     f.MaxAgeDays,
		Compress:   f.Compress,
	})

	return zapcore.NewCore(enc, w, zap.NewAtomicLevelAt(level)), nil
}

// newEncoder builds the encoder for a format. Color only applies to the
// text format, and only when the target is a terminal.
func newEncoder(format config.Format, useColor bool) zapcore.Encoder {
	switch format {
	case config.FormatJSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig(false))
	case config.FormatStructured:
		return zapcore.NewJSONEncoder(jsonEncoderConfig(true))
	default:
		ec := zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
		}
		if useColor {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec)
	}
}

func jsonEncoderConfig(structured bool) zapcore.EncoderConfig {
	ec := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
	}
	if structured {
		ec.CallerKey = "caller"
		ec.FunctionKey = "function"
		ec.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return ec
}
