package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/accelstack/tpu-info/internal/cli"
	"github.com/accelstack/tpu-info/internal/config"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load(os.Getenv("TPUINFO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tpu-info: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger. Diagnostics go to stderr so tables on stdout stay
	// clean for piping.
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
	if cfg.Log.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Cancel on interrupt so streaming mode winds down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(logger, cfg, os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tpu-info: %v\n", err)
		os.Exit(1)
	}
}
