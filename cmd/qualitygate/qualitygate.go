package qualitygate

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/quality-insights/quality-insights/internal/sonar"
	"github.com/quality-insights/quality-insights/pkg/shared/config"
)

var (
	AppConfig   *config.Config
	logger      hclog.Logger
	gateOptions runOptions

	exampleQualityGateUsage = `  # Fetch the quality gate verdict for a project
  quality-insights quality-gate my_org_my-project

  # Fail with a non-zero exit code when the gate is in ERROR
  quality-insights quality-gate --fail-on-error my_org_my-project`
)

type runOptions struct {
	OutputPath  string
	FailOnError bool
}

// QualityGateCmd represents the quality-gate command.
var QualityGateCmd = &cobra.Command{
	Use:                   "quality-gate [--fail-on-error] [--output/-o PATH] PROJECT_KEY",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleQualityGateUsage,
	Short:                 "Fetch the quality gate status for a project",
	RunE:                  runQualityGateCommand,
}

// Init initializes the global configuration and logger for the command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runQualityGateCommand(cmd *cobra.Command, args []string) error {
	if err := validateQualityGateArgs(&gateOptions, args); err != nil {
		logger.Error("invalid quality-gate arguments", "error", err)
		return fmt.Errorf("invalid quality-gate arguments: %w", err)
	}

	client, err := sonar.NewFromConfig(AppConfig, logger)
	if err != nil {
		logger.Error("failed to build sonar client", "error", err)
		return err
	}

	projectKey := args[0]
	result, err := client.QualityGateStatus(projectKey)
	if err != nil {
		logger.Error("failed to fetch quality gate status", "project", projectKey, "error", err)
		return err
	}

	if err := emitReport(result, gateOptions.OutputPath); err != nil {
		return err
	}

	if gateOptions.FailOnError && result.Status == "ERROR" {
		return fmt.Errorf("quality gate for %q is in ERROR", projectKey)
	}
	return nil
}

func init() {
	QualityGateCmd.Flags().StringVarP(&gateOptions.OutputPath, "output", "o", "", "write the JSON result to this path instead of stdout")
	QualityGateCmd.Flags().BoolVar(&gateOptions.FailOnError, "fail-on-error", false, "exit non-zero when the quality gate status is ERROR")
}
