package perf

import (
	"sort"
)

// Statistics is a summary over a set of samples. Durations are seconds.
type Statistics struct {
	Count         int     `json:"count"`
	TotalDuration float64 `json:"total_duration"`
	AvgDuration   float64 `json:"avg_duration"`
	MinDuration   float64 `json:"min_duration"`
	MaxDuration   float64 `json:"max_duration"`
	P95Duration   float64 `json:"p95_duration"`
	P99Duration   float64 `json:"p99_duration"`
}

// Compute summarizes the given samples. An empty input yields the zero
// Statistics.
//
// Percentiles are nearest-rank-floor: the value at index
// floor(count*p) of the ascending-sorted durations, clamped to the
// maximum when the index runs off the end. No interpolation is done,
// which biases small sets toward higher values; the trade is exact,
// reproducible results for a given input.
func Compute(samples []Sample) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	durations := make([]float64, len(samples))
	for i, s := range samples {
		durations[i] = s.Duration.Seconds()
	}
	sort.Float64s(durations)

	count := len(durations)
	total := 0.0
	for _, d := range durations {
		total += d
	}

	return Statistics{
		Count:         count,
		TotalDuration: total,
		AvgDuration:   total / float64(count),
		MinDuration:   durations[0],
		MaxDuration:   durations[count-1],
		P95Duration:   nearestRank(durations, 0.95),
		P99Duration:   nearestRank(durations, 0.99),
	}
}

// nearestRank selects sorted[floor(len*p)], clamped to the last element.
// sorted must be non-empty and ascending.
func nearestRank(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)) * p)
	if idx < len(sorted) {
		return sorted[idx]
	}
	return sorted[len(sorted)-1]
}
