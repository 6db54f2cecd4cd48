package cli

import (
	"context"
	"fmt"

	"careerpilot/internal/backend"
	"careerpilot/internal/common"
	"careerpilot/internal/types"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch recommendations for a set of preferences",
	Long: `Fetch course, job, event, and workshop recommendations from the backend
for the given preferences and print them in the chosen format.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if recommendConfig.OutputFormat == "" {
			recommendConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(recommendConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRecommend,
}

var (
	recommendConfig common.CommandConfig
	recommendPrefs  preferenceFlags
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	recommendPrefs.register(recommendCmd)

	// Add completion for format flag
	_ = recommendCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	client, err := backend.NewClient(&cfg.Backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	wire, err := recommendPrefs.build()
	if err != nil {
		return err
	}

	logDetails := func(cmdCfg common.CommandConfig) {
		logger.Info("Fetching recommendations",
			"interests", len(wire.Interests),
			"goal", wire.Goal,
			"output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context) (types.RecommendationSet, error) {
		return client.Recommendations(ctx, wire)
	}

	if err := common.RunBackendCommand(cmd.Context(), logger, recommendConfig, operation, logDetails); err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	logger.Info("Recommendations fetched successfully")
	return nil
}
