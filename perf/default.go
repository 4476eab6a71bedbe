package perf

import (
	"sync"
	"time"
)

var (
	defaultMu      sync.Mutex
	defaultTracker *Tracker
)

// Default returns the process-wide tracker, creating a plain one (no
// sink, default config) on first use.
func Default() *Tracker {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultTracker == nil {
		defaultTracker = New()
	}
	return defaultTracker
}

// SetDefault replaces the process-wide tracker and returns the previous
// one, or nil if none existed. Samples buffered by the previous tracker
// are discarded with it; callers must not assume continuity across a
// replacement.
func SetDefault(t *Tracker) *Tracker {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultTracker
	defaultTracker = t
	return prev
}

// Record records a sample on the default tracker.
func Record(operation string, duration time.Duration, opts ...SampleOption) error {
	return Default().Record(operation, duration, opts...)
}

// TrackOperation starts a timing bracket on the default tracker.
func TrackOperation(operation string, opts ...SampleOption) func() {
	return Default().TrackOperation(operation, opts...)
}

// Track runs fn inside a timing bracket on the default tracker.
func Track(operation string, fn func() error, opts ...SampleOption) error {
	return Default().Track(operation, fn, opts...)
}
