package cli

import (
	"context"
	"fmt"

	"careerpilot/internal/backend"
	"careerpilot/internal/common"
	"careerpilot/internal/types"

	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:     "connect-linkedin [linkedin-profile-url]",
	Aliases: []string{"connect"},
	Short:   "Connect a LinkedIn profile",
	Long: `Send a LinkedIn profile URL to the backend for analysis. The reply
contains the extracted profile data, updated preferences, and assistant
suggestions derived from the profile.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if connectConfig.OutputFormat == "" {
			connectConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(connectConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runConnect,
}

var connectConfig common.CommandConfig

func init() {
	connectCmd.Flags().StringVarP(&connectConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	connectCmd.Flags().StringVar(&connectConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}
	metrics := getMetricsFromContext(cmd.Context())

	client, err := backend.NewClient(&cfg.Backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	profileURL := args[0]

	logDetails := func(cmdCfg common.CommandConfig) {
		logger.Info("Connecting LinkedIn profile", "output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context) (types.ConnectLinkedInResponse, error) {
		resp, err := client.ConnectLinkedIn(ctx, profileURL)
		if metrics != nil {
			metrics.RecordLinkedInConnect(ctx, err == nil)
		}
		return resp, err
	}

	if err := common.RunBackendCommand(cmd.Context(), logger, connectConfig, operation, logDetails); err != nil {
		return fmt.Errorf("failed to connect LinkedIn profile: %w", err)
	}
	logger.Info("LinkedIn profile connected successfully")
	return nil
}
