package perf

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pharoslog/pharos/config"
)

var (
	// ErrEmptyOperation is returned by Record for an empty operation name.
	ErrEmptyOperation = errors.New("perf: operation name must not be empty")

	// ErrNegativeDuration is returned by Record for a negative duration.
	ErrNegativeDuration = errors.New("perf: duration must not be negative")
)

// Tracker records performance samples into an in-memory buffer and
// eagerly emits threshold-exceeding samples to a Sink.
//
// The buffer is guarded by a single exclusive mutex shared by Record,
// Metrics and Clear. A reader/writer split would allow concurrent
// snapshots, but at the call volumes of a logging subsystem the simpler
// scheme wins; treat this as a scaling limit, not a correctness issue.
type Tracker struct {
	cfg  config.PerformanceConfig
	sink Sink
	hist *Histogram

	mu      sync.Mutex
	samples []Sample
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithConfig sets the performance configuration. The zero value of
// ThresholdMS means every sample is emitted.
func WithConfig(cfg config.PerformanceConfig) TrackerOption {
	return func(t *Tracker) { t.cfg = cfg }
}

// WithSink sets the sink receiving eagerly emitted samples. Without a
// sink the tracker only buffers.
func WithSink(s Sink) TrackerOption {
	return func(t *Tracker) { t.sink = s }
}

// WithHistogram attaches a bounded-memory HDR aggregator that receives
// every recorded sample in addition to the buffer.
func WithHistogram(h *Histogram) TrackerOption {
	return func(t *Tracker) { t.hist = h }
}

// New creates a Tracker. By default it uses config.DefaultPerformance()
// and no sink.
func New(opts ...TrackerOption) *Tracker {
	t := &Tracker{cfg: config.DefaultPerformance()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record validates and stores one sample, stamping it with the current
// UTC time. If the duration meets or exceeds the configured threshold
// the sample is also emitted to the sink.
//
// The append happens under the buffer lock; emission happens after the
// lock is released, so a slow sink never blocks concurrent recorders,
// and the sample is buffered regardless of what the sink does.
func (t *Tracker) Record(operation string, duration time.Duration, opts ...SampleOption) error {
	if operation == "" {
		return ErrEmptyOperation
	}
	if duration < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDuration, duration)
	}

	sample := Sample{
		Operation: operation,
		Duration:  duration,
		Timestamp: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&sample)
	}
	if sample.Context == nil {
		sample.Context = map[string]Value{}
	}

	t.mu.Lock()
	t.samples = append(t.samples, sample)
	t.mu.Unlock()

	if t.hist != nil {
		t.hist.record(sample.Operation, sample.Duration)
	}

	if t.sink != nil && sample.DurationMS() >= t.cfg.ThresholdMS {
		t.emit(sample)
	}

	return nil
}

// emit writes the threshold-exceeding sample to the sink.
func (t *Tracker) emit(s Sample) {
	fields := make([]zap.Field, 0, len(s.Context)+7)
	fields = append(fields,
		zap.String("operation", s.Operation),
		zap.Float64("duration_ms", s.DurationMS()),
		zap.Float64("duration_seconds", s.Duration.Seconds()),
		zap.String("timestamp", s.Timestamp.Format(time.RFC3339Nano)),
	)
	fields = append(fields, contextFields(s.Context)...)
	if s.UserID != "" {
		fields = append(fields, zap.String("user_id", s.UserID))
	}
	if s.SessionID != "" {
		fields = append(fields, zap.String("session_id", s.SessionID))
	}
	if s.RequestID != "" {
		fields = append(fields, zap.String("request_id", s.RequestID))
	}

	msg := fmt.Sprintf("Performance: %s took %.3fs", s.Operation, s.Duration.Seconds())
	t.sink.Emit(zapcore.InfoLevel, msg, fields)
}

// TrackOperation starts a timing bracket and returns the function that
// closes it. The returned func records the elapsed time exactly once,
// no matter how the bracketed work exits:
//
//	defer tracker.TrackOperation("load_index")()
//
// Timing uses the monotonic clock carried by time.Now, so wall-clock
// adjustments cannot corrupt the measurement.
func (t *Tracker) TrackOperation(operation string, opts ...SampleOption) func() {
	start := time.Now()
	var once sync.Once
	return func() {
		once.Do(func() {
			// The elapsed duration is non-negative by construction, and
			// the operation name was the caller's to supply; a validation
			// failure here is a programming error we cannot surface from
			// a deferred close, so it is dropped.
			_ = t.Record(operation, time.Since(start), opts...)
		})
	}
}

// Track runs fn inside a timing bracket. The sample is recorded on
// every exit path, including panic, and fn's error is returned
// unchanged.
func (t *Tracker) Track(operation string, fn func() error, opts ...SampleOption) error {
	defer t.TrackOperation(operation, opts...)()
	return fn()
}

// Query filters the sample buffer. Zero values mean "no constraint".
type Query struct {
	// Operation filters by exact operation name.
	Operation string

	// Since is an inclusive lower bound on the sample timestamp.
	Since time.Time

	// Limit keeps only the most recently recorded samples, preserving
	// their relative order. Ignored by Statistics.
	Limit int
}

// Metrics returns a snapshot copy of the buffered samples matching the
// query, in recording order. The result never aliases the live buffer.
func (t *Tracker) Metrics(q Query) []Sample {
	t.mu.Lock()
	snapshot := make([]Sample, len(t.samples))
	copy(snapshot, t.samples)
	t.mu.Unlock()

	filtered := make([]Sample, 0, len(snapshot))
	for _, s := range snapshot {
		if q.Operation != "" && s.Operation != q.Operation {
			continue
		}
		if !q.Since.IsZero() && s.Timestamp.Before(q.Since) {
			continue
		}
		filtered = append(filtered, s)
	}

	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[len(filtered)-q.Limit:]
	}

	return filtered
}

// Clear atomically empties the sample buffer. Clearing an empty buffer
// is a no-op.
func (t *Tracker) Clear() {
	t.mu.Lock()
	t.samples = nil
	t.mu.Unlock()
}

// Statistics computes a summary over the samples matching the query.
// The query's Limit is ignored. An empty result set yields an all-zero
// summary, never an error.
func (t *Tracker) Statistics(q Query) Statistics {
	q.Limit = 0
	return Compute(t.Metrics(q))
}
