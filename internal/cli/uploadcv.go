package cli

import (
	"context"
	"fmt"

	"careerpilot/internal/backend"
	"careerpilot/internal/common"
	"careerpilot/internal/types"
	"careerpilot/internal/utils"

	"github.com/spf13/cobra"
)

var uploadCVCmd = &cobra.Command{
	Use:   "upload-cv [cv-file]",
	Short: "Upload a CV for analysis",
	Long: `Upload a CV file to the backend and print the analysis: identified
skills, experience level, recommended roles, skill gaps, and suggested
courses. Accepted formats and the size limit are configurable.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if uploadCVConfig.OutputFormat == "" {
			uploadCVConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(uploadCVConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runUploadCV,
}

var uploadCVConfig common.CommandConfig

func init() {
	uploadCVCmd.Flags().StringVarP(&uploadCVConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	uploadCVCmd.Flags().StringVar(&uploadCVConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runUploadCV(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}
	metrics := getMetricsFromContext(cmd.Context())

	cvPath := args[0]
	if err := utils.ValidateCVFile(cvPath, cfg.App.MaxCVSize, cfg.App.CVExtensions); err != nil {
		return err
	}

	client, err := backend.NewClient(&cfg.Backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	logDetails := func(cmdCfg common.CommandConfig) {
		logger.Info("Uploading CV", "path", cvPath, "output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context) (types.CVAnalysis, error) {
		resp, err := client.UploadCV(ctx, cvPath)
		if metrics != nil {
			metrics.RecordCVUpload(ctx, err == nil)
		}
		if err != nil {
			return types.CVAnalysis{}, err
		}
		return resp.Analysis, nil
	}

	if err := common.RunBackendCommand(cmd.Context(), logger, uploadCVConfig, operation, logDetails); err != nil {
		return fmt.Errorf("failed to upload CV: %w", err)
	}
	logger.Info("CV uploaded and analyzed successfully")
	return nil
}
