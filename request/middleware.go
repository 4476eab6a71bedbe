package request

import (
	"net/http"
	"time"

	"github.com/pharoslog/pharos/perf"
)

// OperationName is the perf operation recorded for requests passing
// through the middleware.
const OperationName = "http_request"

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware returns a net/http middleware that times each request,
// logs it through the given request logger, and feeds the duration to
// the given perf tracker under the "http_request" operation. The
// tracker may be nil to skip performance recording.
func Middleware(logger *Logger, tracker *perf.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			requestID := r.Header.Get("X-Request-Id")

			logger.LogRequest(Info{
				Method:      r.Method,
				Path:        r.URL.Path,
				StatusCode:  rec.status,
				Duration:    duration,
				UserAgent:   r.UserAgent(),
				IPAddress:   r.RemoteAddr,
				Headers:     flattenHeader(r.Header),
				QueryParams: flattenValues(r.URL.Query()),
				RequestID:   requestID,
			})

			if tracker != nil {
				opts := []perf.SampleOption{
					perf.WithContext(map[string]perf.Value{
						"method":      perf.String(r.Method),
						"path":        perf.String(r.URL.Path),
						"status_code": perf.Int(int64(rec.status)),
					}),
				}
				if requestID != "" {
					opts = append(opts, perf.WithRequestID(requestID))
				}
				tracker.Record(OperationName, duration, opts...)
			}
		})
	}
}

// flattenHeader keeps the first value of each header.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// flattenValues keeps the first value of each query parameter.
func flattenValues(vs map[string][]string) map[string]string {
	out := make(map[string]string, len(vs))
	for k, v := range vs {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
