package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/readylabs/winready/internal/checker"
	"github.com/readylabs/winready/internal/config"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := config.NewLogger(cfg, "winready")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting winready",
		"version", config.Version,
		"build_time", config.BuildTime,
		"debug", cfg.Debug,
	)

	// Create context with signal handling so a long probe pass can be
	// interrupted cleanly
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	c, err := checker.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create checker", "err", err)
		os.Exit(1)
	}

	if err := c.Run(ctx, os.Stdout); err != nil {
		logger.Error("checker exited with error", "err", err)
		os.Exit(1)
	}
}
