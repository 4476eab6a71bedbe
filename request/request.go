// Package request provides structured HTTP request logging with
// status-driven severity and sensitive-header redaction.
package request

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pharoslog/pharos/config"
	"github.com/pharoslog/pharos/logging"
)

// Info describes one completed HTTP request.
type Info struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration

	UserAgent   string
	IPAddress   string
	Headers     map[string]string
	QueryParams map[string]string
	Body        string

	UserID    string
	SessionID string
	RequestID string

	// Extra fields are appended to the record as-is.
	Extra []zap.Field
}

// Logger logs HTTP requests according to a RequestConfig.
type Logger struct {
	log *logging.Logger
	cfg config.RequestConfig
}

// NewLogger creates a request logger. A nil log uses the process
// default logger named for request routing under Aggregation.
func NewLogger(log *logging.Logger, cfg config.RequestConfig) *Logger {
	if log == nil {
		log = logging.Default().Named(logging.RequestsLoggerName)
	}
	return &Logger{log: log, cfg: cfg}
}

// LogRequest logs one request. Severity follows the status code:
// 5xx logs at error, 4xx at warn, everything else at info.
func (l *Logger) LogRequest(info Info) {
	fields := make([]zap.Field, 0, 12+len(info.Extra))
	fields = append(fields,
		zap.String("method", info.Method),
		zap.String("path", info.Path),
		zap.Int("status_code", info.StatusCode),
	)

	if l.cfg.LogResponseTime {
		fields = append(fields,
			zap.Float64("duration_ms", info.Duration.Seconds()*1000),
			zap.Float64("duration_seconds", info.Duration.Seconds()),
		)
	}

	if l.cfg.LogHeaders && len(info.Headers) > 0 {
		fields = append(fields, zap.Any("headers", l.redactHeaders(info.Headers)))
	}

	if l.cfg.LogQueryParams && len(info.QueryParams) > 0 {
		fields = append(fields, zap.Any("query_params", info.QueryParams))
	}

	if l.cfg.LogBody && info.Body != "" {
		fields = append(fields, zap.String("body", info.Body))
	}

	if info.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", info.UserAgent))
	}
	if info.IPAddress != "" {
		fields = append(fields, zap.String("ip_address", info.IPAddress))
	}

	if info.UserID != "" {
		fields = append(fields, zap.String("user_id", info.UserID))
	}
	if info.SessionID != "" {
		fields = append(fields, zap.String("session_id", info.SessionID))
	}
	if info.RequestID != "" {
		fields = append(fields, zap.String("request_id", info.RequestID))
	}

	fields = append(fields, info.Extra...)

	msg := fmt.Sprintf("HTTP %s %s - %d (%.3fs)",
		info.Method, info.Path, info.StatusCode, info.Duration.Seconds())

	switch {
	case info.StatusCode >= 500:
		l.log.Error(msg, fields...)
	case info.StatusCode >= 400:
		l.log.Warn(msg, fields...)
	default:
		l.log.Info(msg, fields...)
	}
}

// redactHeaders drops configured sensitive headers, matching
// case-insensitively.
func (l *Logger) redactHeaders(headers map[string]string) map[string]string {
	safe := make(map[string]string, len(headers))
	for k, v := range headers {
		if l.isSensitive(k) {
			continue
		}
		safe[k] = v
	}
	return safe
}

func (l *Logger) isSensitive(header string) bool {
	for _, s := range l.cfg.SensitiveHeaders {
		if strings.EqualFold(header, s) {
			return true
		}
	}
	return false
}
