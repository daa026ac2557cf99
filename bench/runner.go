package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codetesla51/wirebench/client"
)

// Runner drives U concurrent virtual users, each issuing R sequential
// requests through the raw client, recording every completed request into
// Stats exactly once.
type Runner struct {
	cfg       *Config
	stats     *Stats
	completed atomic.Int64

	// Out receives live progress lines; defaults to os.Stdout.
	Out io.Writer
}

func NewRunner(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Runner{
		cfg:   cfg,
		stats: NewStats(),
		Out:   os.Stdout,
	}, nil
}

// Result is the outcome of one run.
type Result struct {
	Summary Summary
	Elapsed time.Duration
}

// Run executes the warm-up phase, then the measured phase. Cancellation is
// advisory: workers check ctx between requests, never mid-request.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.warmup(ctx)

	reporterCtx, stopReporter := context.WithCancel(ctx)
	reporterDone := make(chan struct{})
	go r.reportProgress(reporterCtx, reporterDone)

	start := time.Now()
	g := new(errgroup.Group)
	for i := 0; i < r.cfg.Users; i++ {
		g.Go(func() error {
			r.runUser(ctx)
			return nil
		})
	}
	g.Wait()
	elapsed := time.Since(start)

	stopReporter()
	<-reporterDone

	return Result{Summary: r.stats.Summarize(), Elapsed: elapsed}, ctx.Err()
}

// warmup issues the configured number of requests on one sequential stream,
// discarding results and swallowing errors.
func (r *Runner) warmup(ctx context.Context) {
	c := client.New(r.cfg.Host, r.cfg.Port)
	for i := 0; i < r.cfg.Warmup; i++ {
		if ctx.Err() != nil {
			return
		}
		c.Get(r.cfg.Path, nil)
	}
}

// runUser is one virtual user: a sequential stream of requests, each
// measured and recorded.
func (r *Runner) runUser(ctx context.Context) {
	c := client.New(r.cfg.Host, r.cfg.Port)
	for i := 0; i < r.cfg.RequestsPerUser; i++ {
		if ctx.Err() != nil {
			return
		}

		start := time.Now()
		resp, err := c.Get(r.cfg.Path, nil)
		latencyMs := float64(time.Since(start).Microseconds()) / 1000

		r.stats.RecordLatency(latencyMs)
		if reason, ok := failureReason(resp, err); ok {
			r.stats.RecordFailure(reason)
		} else {
			r.stats.RecordSuccess()
		}
		r.completed.Add(1)
	}
}

// failureReason classifies a completed request. Transport and decode errors
// carry their message; degraded or non-200 responses are failures too.
func failureReason(resp *client.Response, err error) (string, bool) {
	switch {
	case err != nil:
		return err.Error(), true
	case resp.StatusCode == 0:
		return resp.Reason, true
	case !resp.OK():
		return fmt.Sprintf("status %d %s", resp.StatusCode, resp.Reason), true
	default:
		return "", false
	}
}

// reportProgress prints throughput once per second until cancelled. It is
// not required to stop mid-interval; the final tick may cover a partial
// second.
func (r *Runner) reportProgress(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	var last int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			completed := r.completed.Load()
			fmt.Fprintf(r.Out, "completed %d requests (%d req/s)\n", completed, completed-last)
			last = completed
		}
	}
}
