package request

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/pharoslog/pharos/config"
	"github.com/pharoslog/pharos/perf"
)

func TestMiddleware_LogsAndRecords(t *testing.T) {
	log, logs := observedLogger()
	rl := NewLogger(log, config.DefaultRequest())
	tracker := perf.New()

	handler := Middleware(rl, tracker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest("POST", "/orders?page=2", nil)
	req.Header.Set("X-Request-Id", "r-42")
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log records, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "POST" || fields["path"] != "/orders" {
		t.Errorf("method/path = %v/%v, want POST/orders", fields["method"], fields["path"])
	}
	if fields["status_code"] != int64(201) {
		t.Errorf("status_code = %v, want 201", fields["status_code"])
	}
	if fields["request_id"] != "r-42" {
		t.Errorf("request_id = %v, want r-42", fields["request_id"])
	}

	samples := tracker.Metrics(perf.Query{Operation: OperationName})
	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(samples))
	}
	s := samples[0]
	if s.Duration < 5*time.Millisecond {
		t.Errorf("Duration = %v, want at least 5ms", s.Duration)
	}
	if s.RequestID != "r-42" {
		t.Errorf("RequestID = %q, want r-42", s.RequestID)
	}
	if got := s.Context["status_code"].Interface(); got != int64(201) {
		t.Errorf("context status_code = %v, want 201", got)
	}
}

func TestMiddleware_DefaultStatus(t *testing.T) {
	log, logs := observedLogger()
	rl := NewLogger(log, config.DefaultRequest())

	handler := Middleware(rl, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	entry := logs.All()[0]
	if entry.ContextMap()["status_code"] != int64(200) {
		t.Errorf("status_code = %v, want 200 when handler never calls WriteHeader", entry.ContextMap()["status_code"])
	}
	if entry.Level != zapcore.InfoLevel {
		t.Errorf("level = %v, want info", entry.Level)
	}
}

func TestMiddleware_ErrorStatusSeverity(t *testing.T) {
	log, logs := observedLogger()
	rl := NewLogger(log, config.DefaultRequest())

	handler := Middleware(rl, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

	if got := logs.All()[0].Level; got != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error for a 500 response", got)
	}
}
