package perf

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives eagerly emitted samples. Emission is fire-and-forget:
// the tracker never inspects the outcome, and a misbehaving sink cannot
// affect the sample buffer.
type Sink interface {
	Emit(level zapcore.Level, msg string, fields []zap.Field)
}

type zapSink struct {
	log *zap.Logger
}

// NewZapSink returns a Sink that writes through a zap logger.
func NewZapSink(log *zap.Logger) Sink {
	return zapSink{log: log}
}

func (s zapSink) Emit(level zapcore.Level, msg string, fields []zap.Field) {
	if ce := s.log.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

// contextFields converts a sample context into zap fields, sorted by key
// for deterministic output.
func contextFields(ctx map[string]Value) []zap.Field {
	if len(ctx) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, ctx[k].Interface()))
	}
	return fields
}
