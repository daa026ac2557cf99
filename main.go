package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/codetesla51/wirebench/bench"
	"github.com/codetesla51/wirebench/server"
)

var (
	version = "0.1.0"

	flagConfig string
	flagHost   string
	flagPort   int
	flagPath   string

	flagMaxConns    int
	flagKeepAliveMs int
	flagQuiet       bool

	flagUsers    int
	flagRequests int
	flagWarmup   int

	flagOutput string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wirebench",
	Short: "Minimal raw-socket HTTP/1.1 server and load harness",
	Long: `wirebench speaks a GET-only HTTP/1.1 subset directly over TCP:
a server with manual header framing and admission control, a raw client,
and a load harness that reports latency percentiles.

Examples:
  wirebench serve --port 8080 --max-conns 256
  wirebench bench --port 8080 --users 50 --requests 200
  wirebench genwrk -o bench.lua`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the raw HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := serverConfig(cmd)
		if err != nil {
			return err
		}

		srv := server.New(cfg)
		if err := srv.Listen(); err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
		}
		fmt.Printf("wirebench serving on %s (capacity %d)\n", srv.Addr(), cfg.MaxConnections)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Serve() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the load harness against a server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := benchConfig(cmd)
		if err != nil {
			return err
		}

		runner, err := bench.NewRunner(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		res, err := runner.Run(ctx)
		bench.PrintReport(os.Stdout, cfg, res)
		return err
	},
}

var genwrkCmd = &cobra.Command{
	Use:   "genwrk",
	Short: "Generate a wrk Lua script matching the bench request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := benchConfig(cmd)
		if err != nil {
			return err
		}
		if err := bench.WriteWrkScript(flagOutput, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", flagOutput)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "wirebench.yaml", "yaml config file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "127.0.0.1", "host to bind or target")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 8080, "port to bind or target")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", "/", "request path")

	serveCmd.Flags().IntVar(&flagMaxConns, "max-conns", 256, "max concurrently handled connections")
	serveCmd.Flags().IntVar(&flagKeepAliveMs, "keepalive-ms", 5000, "keep-alive read timeout in milliseconds")
	serveCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "disable per-request logging")

	benchCmd.Flags().IntVarP(&flagUsers, "users", "u", 10, "concurrent virtual users")
	benchCmd.Flags().IntVarP(&flagRequests, "requests", "r", 100, "requests per user")
	benchCmd.Flags().IntVarP(&flagWarmup, "warmup", "w", 10, "warm-up request count")

	genwrkCmd.Flags().StringVarP(&flagOutput, "output", "o", "wirebench.lua", "output script file")

	rootCmd.AddCommand(serveCmd, benchCmd, genwrkCmd)
}

// serverConfig merges defaults, the yaml file, and explicit flags.
func serverConfig(cmd *cobra.Command) (*server.Config, error) {
	file, err := loadFileConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg := server.DefaultConfig()
	cfg.EnableLogging = true

	if file.Host != "" {
		cfg.Host = file.Host
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.MaxConnections != 0 {
		cfg.MaxConnections = int64(file.MaxConnections)
	}
	if file.KeepAliveTimeoutMs != 0 {
		cfg.KeepAliveTimeout = time.Duration(file.KeepAliveTimeoutMs) * time.Millisecond
	}

	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("max-conns") {
		cfg.MaxConnections = int64(flagMaxConns)
	}
	if cmd.Flags().Changed("keepalive-ms") {
		cfg.KeepAliveTimeout = time.Duration(flagKeepAliveMs) * time.Millisecond
	}
	if flagQuiet {
		cfg.EnableLogging = false
	}
	return cfg, nil
}

// benchConfig merges defaults, the yaml file, and explicit flags.
func benchConfig(cmd *cobra.Command) (*bench.Config, error) {
	file, err := loadFileConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg := bench.DefaultConfig()
	if file.Host != "" {
		cfg.Host = file.Host
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.Path != "" {
		cfg.Path = file.Path
	}
	if file.Users != 0 {
		cfg.Users = file.Users
	}
	if file.RequestsPerUser != 0 {
		cfg.RequestsPerUser = file.RequestsPerUser
	}
	if file.Warmup != 0 {
		cfg.Warmup = file.Warmup
	}

	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("path") {
		cfg.Path = flagPath
	}
	if cmd.Flags().Changed("users") {
		cfg.Users = flagUsers
	}
	if cmd.Flags().Changed("requests") {
		cfg.RequestsPerUser = flagRequests
	}
	if cmd.Flags().Changed("warmup") {
		cfg.Warmup = flagWarmup
	}
	return cfg, nil
}
