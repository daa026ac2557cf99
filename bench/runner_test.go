package bench

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/codetesla51/wirebench/server"
)

func startTestServer(t *testing.T) int {
	t.Helper()

	cfg := server.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	srv := server.New(cfg)
	if err := srv.Listen(); err != nil {
		t.Fatalf("listen: %v", err)
	}
	go srv.Serve()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	})

	return srv.Addr().(*net.TCPAddr).Port
}

func TestRunnerRecordsEveryRequestOnce(t *testing.T) {
	port := startTestServer(t)

	cfg := &Config{
		Host:            "127.0.0.1",
		Port:            port,
		Path:            "/bench",
		Users:           4,
		RequestsPerUser: 25,
		Warmup:          3,
	}
	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	runner.Out = io.Discard

	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := res.Summary
	want := cfg.Users * cfg.RequestsPerUser
	if sum.Total != want {
		t.Errorf("total = %d, want %d (warm-up must not be recorded)", sum.Total, want)
	}
	if sum.Success != want {
		t.Errorf("success = %d, want %d; reasons: %v", sum.Success, want, sum.Reasons)
	}
	if sum.Samples != want {
		t.Errorf("latency samples = %d, want %d", sum.Samples, want)
	}
	if res.Elapsed <= 0 {
		t.Errorf("elapsed = %v, want > 0", res.Elapsed)
	}
}

func TestRunnerCountsUnreachableTargetAsFailures(t *testing.T) {
	// Reserve a port, then close it so every dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	cfg := &Config{
		Host:            "127.0.0.1",
		Port:            port,
		Path:            "/",
		Users:           2,
		RequestsPerUser: 3,
		Warmup:          1,
	}
	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	runner.Out = io.Discard

	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := res.Summary
	want := cfg.Users * cfg.RequestsPerUser
	if sum.Failure != want {
		t.Errorf("failure = %d, want %d", sum.Failure, want)
	}
	if len(sum.Reasons) == 0 {
		t.Error("failure breakdown is empty")
	}
}

func TestRunnerValidatesConfig(t *testing.T) {
	if _, err := NewRunner(&Config{Host: "h", Port: 1, Users: 0, RequestsPerUser: 1}); err == nil {
		t.Error("expected validation error for zero users")
	}
}

func TestWrkScriptContainsRequestShape(t *testing.T) {
	cfg := &Config{Host: "target.example", Port: 80, Path: "/load", Users: 1, RequestsPerUser: 1}
	script := WrkScript(cfg)

	for _, want := range []string{
		`wrk.method = "GET"`,
		`wrk.path = "/load"`,
		`wrk.headers["Host"] = "target.example"`,
		`wrk.headers["Connection"] = "close"`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}
