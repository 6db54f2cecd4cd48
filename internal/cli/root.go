package cli

import (
	"context"
	"fmt"

	"careerpilot/internal/config"
	"careerpilot/internal/errors"
	"careerpilot/internal/observability"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}
type metricsKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}
var metricsKey = metricsKeyType{}

var rootCmd = &cobra.Command{
	Use:   "careerpilot",
	Short: "A terminal client for the career planning assistant",
	Long: `Careerpilot is a command-line client for the career planning assistant
backend. It keeps your career preferences (interests, level, goal), chats with
the assistant, and shows course, job, event, and workshop recommendations that
follow your filters. It can also connect a LinkedIn profile and upload a CV
for analysis.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger, metrics *observability.Metrics) error {
	// Attach the config, logger, and metrics to the context, making them
	// available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	ctx = context.WithValue(ctx, metricsKey, metrics)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg, nil
	}
	return nil, fmt.Errorf("config not found in context")
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) (*errors.Logger, error) {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger, nil
	}
	return nil, fmt.Errorf("logger not found in context")
}

// getMetricsFromContext is a helper function to get metrics from context.
// Metrics are optional; a nil return disables recording.
func getMetricsFromContext(ctx context.Context) *observability.Metrics {
	if metrics, ok := ctx.Value(metricsKey).(*observability.Metrics); ok {
		return metrics
	}
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(uploadCVCmd)
	rootCmd.AddCommand(versionCmd)
}
