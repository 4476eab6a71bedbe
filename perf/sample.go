package perf

import (
	"time"
)

// Sample is one recorded performance observation. Samples are immutable
// once recorded.
type Sample struct {
	// Operation names the measured unit of work. Never empty.
	Operation string `json:"operation"`

	// Duration is the elapsed time of the operation. Never negative.
	Duration time.Duration `json:"duration"`

	// Timestamp is when the sample was recorded, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Context carries additional attributes merged into emitted records.
	Context map[string]Value `json:"context,omitempty"`

	// UserID, SessionID and RequestID are optional correlation
	// identifiers. Empty means not applicable.
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// DurationMS returns the duration in milliseconds. It is always derived
// from Duration so the two can never drift apart.
func (s Sample) DurationMS() float64 {
	return s.Duration.Seconds() * 1000
}

// SampleOption attaches optional metadata to a recorded sample.
type SampleOption func(*Sample)

// WithContext merges additional attributes into the sample's context.
func WithContext(ctx map[string]Value) SampleOption {
	return func(s *Sample) {
		if s.Context == nil {
			s.Context = make(map[string]Value, len(ctx))
		}
		for k, v := range ctx {
			s.Context[k] = v
		}
	}
}

// WithUser sets the user correlation identifier.
func WithUser(id string) SampleOption {
	return func(s *Sample) { s.UserID = id }
}

// WithSession sets the session correlation identifier.
func WithSession(id string) SampleOption {
	return func(s *Sample) { s.SessionID = id }
}

// WithRequestID sets the request correlation identifier.
func WithRequestID(id string) SampleOption {
	return func(s *Sample) { s.RequestID = id }
}
