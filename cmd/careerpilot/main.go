package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"careerpilot/internal/cli"
	"careerpilot/internal/config"
	"careerpilot/internal/errors"
	"careerpilot/internal/observability"
)

func main() {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	logger, err := errors.New(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Initialize observability
	obsConfig := observability.GetObservabilityConfig(cfg, cli.Version)
	om, err := observability.NewObservabilityManager(obsConfig, cfg)
	if err != nil {
		logger.LogError(err, "Failed to initialize observability")
		os.Exit(1)
	}
	defer func() {
		if err := om.Shutdown(context.Background()); err != nil {
			logger.LogError(err, "Failed to shut down observability")
		}
	}()

	// Log startup
	logger.Info("Starting careerpilot",
		"version", cli.Version,
		"log_level", cfg.App.LogLevel,
		"backend", cfg.Backend.BaseURL)

	// Execute command with cancellable context
	if err := cli.Execute(ctx, cfg, logger, om.GetMetrics()); err != nil {
		logger.LogError(err, "Application execution failed")
		os.Exit(1)
	}
}
