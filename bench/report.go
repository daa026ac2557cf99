package bench

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintReport writes the final colorized summary of a run.
func PrintReport(w io.Writer, cfg *Config, res Result) {
	sum := res.Summary

	fmt.Fprintln(w, color.CyanString("--- wirebench results ---"))
	fmt.Fprintf(w, "target:        http://%s:%d%s\n", cfg.Host, cfg.Port, cfg.Path)
	fmt.Fprintf(w, "users:         %d, requests/user: %d, warm-up: %d\n",
		cfg.Users, cfg.RequestsPerUser, cfg.Warmup)
	fmt.Fprintf(w, "duration:      %.2fs\n", res.Elapsed.Seconds())

	fmt.Fprintf(w, "requests:      %d\n", sum.Total)
	fmt.Fprintf(w, "succeeded:     %s\n", color.GreenString("%d", sum.Success))
	if sum.Failure > 0 {
		fmt.Fprintf(w, "failed:        %s\n", color.RedString("%d", sum.Failure))
	} else {
		fmt.Fprintf(w, "failed:        %d\n", sum.Failure)
	}
	if sum.Total > 0 {
		fmt.Fprintf(w, "success rate:  %.2f%%\n", sum.SuccessRate)
		fmt.Fprintf(w, "throughput:    %.1f req/s\n",
			float64(sum.Total)/res.Elapsed.Seconds())
	}

	if sum.Samples > 0 {
		fmt.Fprintln(w, color.CyanString("--- latency (ms) ---"))
		fmt.Fprintf(w, "min: %.2f  mean: %.2f  max: %.2f\n", sum.MinMs, sum.MeanMs, sum.MaxMs)
		fmt.Fprintf(w, "p50: %.2f  p95: %.2f  p99: %.2f\n", sum.P50Ms, sum.P95Ms, sum.P99Ms)
	}

	if len(sum.Reasons) > 0 {
		fmt.Fprintln(w, color.RedString("--- errors ---"))
		for _, rc := range sum.Reasons {
			fmt.Fprintf(w, "%6d  %s\n", rc.Count, rc.Reason)
		}
	}
}
