package bench

import (
	"math"
	"sort"
	"sync"
)

// Stats aggregates results from concurrent workers. One mutex protects the
// counters, the latency samples and the failure-reason tally; critical
// sections are kept to increments and appends so contention stays off the
// measured path.
type Stats struct {
	mu             sync.Mutex
	successCount   int
	failureCount   int
	latencies      []float64 // milliseconds
	failureReasons map[string]int
}

func NewStats() *Stats {
	return &Stats{
		latencies:      make([]float64, 0, 1024),
		failureReasons: make(map[string]int),
	}
}

func (s *Stats) RecordSuccess() {
	s.mu.Lock()
	s.successCount++
	s.mu.Unlock()
}

func (s *Stats) RecordFailure(reason string) {
	s.mu.Lock()
	s.failureCount++
	s.failureReasons[reason]++
	s.mu.Unlock()
}

func (s *Stats) RecordLatency(ms float64) {
	s.mu.Lock()
	s.latencies = append(s.latencies, ms)
	s.mu.Unlock()
}

// Completed returns success + failure, for live progress reporting.
func (s *Stats) Completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successCount + s.failureCount
}

// ReasonCount is one entry of the failure breakdown.
type ReasonCount struct {
	Reason string
	Count  int
}

// Summary is a point-in-time view of the aggregated metrics.
type Summary struct {
	Success int
	Failure int
	Total   int

	// SuccessRate is a percentage; meaningful only when Total > 0.
	SuccessRate float64

	Samples int
	MinMs   float64
	MaxMs   float64
	MeanMs  float64
	P50Ms   float64
	P95Ms   float64
	P99Ms   float64

	// Reasons is sorted by descending occurrence count.
	Reasons []ReasonCount
}

// Summarize sorts the collected latencies and computes order statistics.
// Percentile pNN is the sample at index floor(NN/100 * n), clamped.
func (s *Stats) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Success: s.successCount,
		Failure: s.failureCount,
		Total:   s.successCount + s.failureCount,
		Samples: len(s.latencies),
	}
	if sum.Total > 0 {
		sum.SuccessRate = float64(sum.Success) / float64(sum.Total) * 100
	}

	if len(s.latencies) > 0 {
		sorted := make([]float64, len(s.latencies))
		copy(sorted, s.latencies)
		sort.Float64s(sorted)

		var total float64
		for _, v := range sorted {
			total += v
		}

		sum.MinMs = sorted[0]
		sum.MaxMs = sorted[len(sorted)-1]
		sum.MeanMs = total / float64(len(sorted))
		sum.P50Ms = percentileAt(sorted, 0.50)
		sum.P95Ms = percentileAt(sorted, 0.95)
		sum.P99Ms = percentileAt(sorted, 0.99)
	}

	for reason, count := range s.failureReasons {
		sum.Reasons = append(sum.Reasons, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(sum.Reasons, func(i, j int) bool {
		if sum.Reasons[i].Count != sum.Reasons[j].Count {
			return sum.Reasons[i].Count > sum.Reasons[j].Count
		}
		return sum.Reasons[i].Reason < sum.Reasons[j].Reason
	})

	return sum
}

func percentileAt(sorted []float64, p float64) float64 {
	idx := int(math.Floor(p * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
