package perf

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HistogramConfig contains configuration for the HDR aggregator.
type HistogramConfig struct {
	// MinValue is the minimum recordable value in microseconds (default: 1)
	MinValue int64

	// MaxValue is the maximum recordable value in microseconds
	// (default: 3600000000 = 1 hour)
	MaxValue int64

	// SigFigs is the number of significant figures (default: 3)
	SigFigs int
}

// DefaultHistogramConfig returns the default configuration.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		MinValue: 1,
		MaxValue: 3600000000, // 1 hour in microseconds
		SigFigs:  3,
	}
}

// Histogram aggregates sample durations into HDR histograms, overall
// and per operation. Unlike the tracker's raw sample buffer it has
// bounded memory, at the cost of the histogram's value quantization,
// which makes it the right reporting surface for long-running
// processes.
//
// Attach one to a Tracker with WithHistogram.
type Histogram struct {
	mu          sync.Mutex
	overall     *hdrhistogram.Histogram
	byOperation map[string]*hdrhistogram.Histogram
	cfg         HistogramConfig
}

// NewHistogram creates a Histogram with default configuration.
func NewHistogram() *Histogram {
	return NewHistogramWithConfig(DefaultHistogramConfig())
}

// NewHistogramWithConfig creates a Histogram with custom configuration.
func NewHistogramWithConfig(cfg HistogramConfig) *Histogram {
	return &Histogram{
		overall:     hdrhistogram.New(cfg.MinValue, cfg.MaxValue, cfg.SigFigs),
		byOperation: make(map[string]*hdrhistogram.Histogram),
		cfg:         cfg,
	}
}

// record folds one sample into the overall and per-operation
// histograms.
// NOTE: HDR histogram RecordValue is NOT thread-safe, so we must hold a lock.
func (h *Histogram) record(operation string, duration time.Duration) {
	micros := duration.Microseconds()

	// Clamp to valid range
	if micros < h.cfg.MinValue {
		micros = h.cfg.MinValue
	}
	if micros > h.cfg.MaxValue {
		micros = h.cfg.MaxValue
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.overall.RecordValue(micros)

	hist, exists := h.byOperation[operation]
	if !exists {
		hist = hdrhistogram.New(h.cfg.MinValue, h.cfg.MaxValue, h.cfg.SigFigs)
		h.byOperation[operation] = hist
	}
	hist.RecordValue(micros)
}

// HistogramStats contains duration statistics from an HDR histogram.
type HistogramStats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
	Count  int64         `json:"count"`
}

// Stats returns statistics over all recorded samples.
func (h *Histogram) Stats() HistogramStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return statsFrom(h.overall)
}

// OperationStats returns per-operation statistics.
func (h *Histogram) OperationStats() map[string]HistogramStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make(map[string]HistogramStats, len(h.byOperation))
	for name, hist := range h.byOperation {
		result[name] = statsFrom(hist)
	}
	return result
}

// Reset discards all recorded values.
func (h *Histogram) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.overall.Reset()
	h.byOperation = make(map[string]*hdrhistogram.Histogram)
}

func statsFrom(hist *hdrhistogram.Histogram) HistogramStats {
	if hist.TotalCount() == 0 {
		return HistogramStats{}
	}
	return HistogramStats{
		Min:    time.Duration(hist.Min()) * time.Microsecond,
		Max:    time.Duration(hist.Max()) * time.Microsecond,
		Mean:   time.Duration(hist.Mean()) * time.Microsecond,
		StdDev: time.Duration(hist.StdDev()) * time.Microsecond,
		P50:    time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:    time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:    time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:    time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Count:  hist.TotalCount(),
	}
}
