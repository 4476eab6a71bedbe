package request

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pharoslog/pharos/config"
	"github.com/pharoslog/pharos/logging"
)

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

func TestLogRequest_MessageAndSeverity(t *testing.T) {
	tests := []struct {
		status  int
		level   zapcore.Level
		message string
	}{
		{200, zapcore.InfoLevel, "HTTP GET /users - 200 (0.250s)"},
		{301, zapcore.InfoLevel, "HTTP GET /users - 301 (0.250s)"},
		{404, zapcore.WarnLevel, "HTTP GET /users - 404 (0.250s)"},
		{500, zapcore.ErrorLevel, "HTTP GET /users - 500 (0.250s)"},
		{503, zapcore.ErrorLevel, "HTTP GET /users - 503 (0.250s)"},
	}

	for _, tt := range tests {
		log, logs := observedLogger()
		rl := NewLogger(log, config.DefaultRequest())

		rl.LogRequest(Info{
			Method:     "GET",
			Path:       "/users",
			StatusCode: tt.status,
			Duration:   250 * time.Millisecond,
		})

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("status %d: got %d records, want 1", tt.status, len(entries))
		}
		if entries[0].Level != tt.level {
			t.Errorf("status %d: level = %v, want %v", tt.status, entries[0].Level, tt.level)
		}
		if entries[0].Message != tt.message {
			t.Errorf("status %d: message = %q, want %q", tt.status, entries[0].Message, tt.message)
		}
	}
}

func TestLogRequest_Fields(t *testing.T) {
	log, logs := observedLogger()
	rl := NewLogger(log, config.DefaultRequest())

	rl.LogRequest(Info{
		Method:     "POST",
		Path:       "/orders",
		StatusCode: 201,
		Duration:   100 * time.Millisecond,
		UserAgent:  "test-agent",
		IPAddress:  "10.0.0.1",
		UserID:     "u-1",
		SessionID:  "s-1",
		RequestID:  "r-1",
	})

	fields := logs.All()[0].ContextMap()
	want := map[string]interface{}{
		"method":      "POST",
		"path":        "/orders",
		"status_code": int64(201),
		"user_agent":  "test-agent",
		"ip_address":  "10.0.0.1",
		"user_id":     "u-1",
		"session_id":  "s-1",
		"request_id":  "r-1",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("field %s = %v, want %v", k, fields[k], v)
		}
	}
	if fields["duration_ms"] != float64(100) {
		t.Errorf("duration_ms = %v, want 100", fields["duration_ms"])
	}
}

func TestLogRequest_SensitiveHeadersRedacted(t *testing.T) {
	log, logs := observedLogger()
	cfg := config.DefaultRequest()
	cfg.LogHeaders = true
	rl := NewLogger(log, cfg)

	rl.LogRequest(Info{
		Method:     "GET",
		Path:       "/",
		StatusCode: 200,
		Headers: map[string]string{
			"Authorization": "Bearer secret",
			"Cookie":        "session=abc",
			"Accept":        "application/json",
		},
	})

	headers, ok := logs.All()[0].ContextMap()["headers"].(map[string]string)
	if !ok {
		t.Fatal("headers field missing or wrong type")
	}
	if _, present := headers["Authorization"]; present {
		t.Error("Authorization header was not redacted")
	}
	if _, present := headers["Cookie"]; present {
		t.Error("Cookie header was not redacted")
	}
	if headers["Accept"] != "application/json" {
		t.Error("non-sensitive header was dropped")
	}
}

func TestLogRequest_ConfigGating(t *testing.T) {
	log, logs := observedLogger()
	cfg := config.DefaultRequest()
	cfg.LogResponseTime = false
	cfg.LogHeaders = false
	cfg.LogQueryParams = false
	cfg.LogBody = false
	rl := NewLogger(log, cfg)

	rl.LogRequest(Info{
		Method:      "GET",
		Path:        "/",
		StatusCode:  200,
		Duration:    time.Second,
		Headers:     map[string]string{"Accept": "*/*"},
		QueryParams: map[string]string{"page": "2"},
		Body:        `{"a":1}`,
	})

	fields := logs.All()[0].ContextMap()
	for _, key := range []string{"duration_ms", "duration_seconds", "headers", "query_params", "body"} {
		if _, present := fields[key]; present {
			t.Errorf("field %s present despite being disabled", key)
		}
	}
}

func TestLogRequest_ExtraFields(t *testing.T) {
	log, logs := observedLogger()
	rl := NewLogger(log, config.DefaultRequest())

	rl.LogRequest(Info{
		Method:     "GET",
		Path:       "/",
		StatusCode: 200,
		Extra:      []zap.Field{zap.String("tenant", "acme")},
	})

	if got := logs.All()[0].ContextMap()["tenant"]; got != "acme" {
		t.Errorf("tenant = %v, want acme", got)
	}
}
