// Package perf provides performance metric recording and aggregation.
//
// A Tracker captures (operation, duration, context) samples into an
// in-memory buffer and eagerly emits samples that exceed a configured
// duration threshold to a log sink. Recorded samples can be queried and
// summarized at any time:
//
//	tracker := perf.New(
//	    perf.WithSink(perf.NewZapSink(logger.Zap())),
//	    perf.WithConfig(config.DefaultPerformance()),
//	)
//
//	// Manual recording
//	tracker.Record("db_query", 42*time.Millisecond,
//	    perf.WithContext(map[string]perf.Value{"table": perf.String("users")}),
//	)
//
//	// Scoped timing bracket; records on every exit path, including panic
//	defer tracker.TrackOperation("request_handler")()
//
//	// Summary statistics
//	stats := tracker.Statistics(perf.Query{Operation: "db_query"})
//	fmt.Printf("p95: %.3fs\n", stats.P95Duration)
//
// # Percentile Semantics
//
// Statistics uses nearest-rank-floor percentiles over the raw sample
// buffer: the value at index floor(count*p) of the ascending-sorted
// durations, clamped to the maximum. This is exact for the recorded
// samples but biased toward higher values at small counts.
//
// For long-running processes where an unbounded sample buffer is not
// acceptable, an optional Histogram aggregator folds every sample into
// HDR histograms with bounded memory; see NewHistogram.
//
// # Thread Safety
//
// All Tracker methods are safe for concurrent use. The sample buffer is
// guarded by a single exclusive mutex; sink emission happens outside
// the lock so sink latency never blocks other recorders.
package perf
