// Package training provides structured logging for machine-learning
// training runs: lifecycle events, per-step metrics, validation results,
// checkpoints and model load/save events.
package training

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pharoslog/pharos/config"
	"github.com/pharoslog/pharos/logging"
)

// LoggerName routes training records to their own file under
// logging.Aggregation when used as the logger name.
const LoggerName = "training"

// Logger logs training and model events according to a TrainingConfig.
type Logger struct {
	log *logging.Logger
	cfg config.TrainingConfig
}

// NewLogger creates a training logger. A nil log uses the process
// default logger named "training".
func NewLogger(log *logging.Logger, cfg config.TrainingConfig) *Logger {
	if log == nil {
		log = logging.Default().Named(LoggerName)
	}
	return &Logger{log: log, cfg: cfg}
}

// LogEvent logs a generic training event with arbitrary fields.
func (l *Logger) LogEvent(event string, fields ...zap.Field) {
	if !l.cfg.Enabled {
		return
	}
	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, zap.String("event", event))
	all = append(all, fields...)
	l.log.Info(fmt.Sprintf("Training event: %s", event), all...)
}

// LogModelEvent logs a generic model event with arbitrary fields.
func (l *Logger) LogModelEvent(event string, fields ...zap.Field) {
	if !l.cfg.Enabled {
		return
	}
	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, zap.String("event", event))
	all = append(all, fields...)
	l.log.Info(fmt.Sprintf("Model event: %s", event), all...)
}

// LogTrainingStart logs the start of a run. Hyperparameters are included
// when LogHyperparameters is set.
func (l *Logger) LogTrainingStart(modelName string, hyperparameters map[string]interface{}, fields ...zap.Field) {
	extra := fields
	if l.cfg.LogHyperparameters && len(hyperparameters) > 0 {
		extra = append([]zap.Field{zap.Any("hyperparameters", hyperparameters)}, fields...)
	}
	l.LogEvent("training_start", append([]zap.Field{zap.String("model", modelName)}, extra...)...)
}

// LogStep logs one training step. Metrics are included when LogMetrics
// is set.
func (l *Logger) LogStep(epoch, step int, metrics map[string]float64, fields ...zap.Field) {
	all := []zap.Field{zap.Int("epoch", epoch), zap.Int("step", step)}
	if l.cfg.LogMetrics {
		for k, v := range metrics {
			all = append(all, zap.Float64(k, v))
		}
	}
	all = append(all, fields...)
	l.LogEvent("training_step", all...)
}

// LogValidation logs a validation pass. Dropped when LogValidation is
// off.
func (l *Logger) LogValidation(epoch int, metrics map[string]float64, fields ...zap.Field) {
	if !l.cfg.LogValidation {
		return
	}
	all := []zap.Field{zap.Int("epoch", epoch)}
	for k, v := range metrics {
		all = append(all, zap.Float64(k, v))
	}
	all = append(all, fields...)
	l.LogEvent("validation", all...)
}

// LogCheckpoint logs a checkpoint write. Dropped when LogCheckpoints is
// off.
func (l *Logger) LogCheckpoint(path string, epoch int, fields ...zap.Field) {
	if !l.cfg.LogCheckpoints {
		return
	}
	all := []zap.Field{zap.String("path", path), zap.Int("epoch", epoch)}
	all = append(all, fields...)
	l.LogEvent("checkpoint", all...)
}

// LogTrainingEnd logs the end of a run with its final metrics.
func (l *Logger) LogTrainingEnd(modelName string, finalMetrics map[string]float64, fields ...zap.Field) {
	all := []zap.Field{zap.String("model", modelName)}
	if l.cfg.LogMetrics {
		for k, v := range finalMetrics {
			all = append(all, zap.Float64(k, v))
		}
	}
	all = append(all, fields...)
	l.LogEvent("training_end", all...)
}

// LogModelSave logs a model save.
func (l *Logger) LogModelSave(modelName, path string, fields ...zap.Field) {
	all := []zap.Field{zap.String("model", modelName), zap.String("path", path)}
	all = append(all, fields...)
	l.LogModelEvent("model_save", all...)
}

// LogModelLoad logs a model load.
func (l *Logger) LogModelLoad(modelName, path string, fields ...zap.Field) {
	all := []zap.Field{zap.String("model", modelName), zap.String("path", path)}
	all = append(all, fields...)
	l.LogModelEvent("model_load", all...)
}
