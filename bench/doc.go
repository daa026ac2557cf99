// Package bench drives concurrent load against a wirebench server and
// aggregates the results.
//
// A run has three phases: a warm-up on one sequential connection whose
// results are discarded, a measured phase where every virtual user issues
// its requests back to back, and summarization. Each completed request is
// recorded exactly once, success or failure, together with its latency.
//
// Cancellation is advisory: workers check the context between requests,
// never while one is in flight. The progress reporter polls the completed
// count once per second and stops cooperatively after the workers finish.
//
// Percentiles are order statistics over the sorted sample set: pNN is the
// sample at index floor(NN/100 * n), clamped to the valid range, so
// min <= p50 <= p95 <= p99 <= max always holds.
package bench
