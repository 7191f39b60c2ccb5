package bugs

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/quality-insights/quality-insights/internal/sonar"
	"github.com/quality-insights/quality-insights/pkg/shared/config"
)

var (
	AppConfig  *config.Config
	logger     hclog.Logger
	bugOptions runOptions

	exampleBugsUsage = `  # Fetch bug details for a project
  quality-insights bugs my_org_my-project

  # Write the report to a file instead of stdout
  quality-insights bugs --output /path/to/bugs.json my_org_my-project`
)

type runOptions struct {
	OutputPath string
}

// BugsCmd represents the bugs command.
var BugsCmd = &cobra.Command{
	Use:                   "bugs [--output/-o PATH] PROJECT_KEY",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleBugsUsage,
	Short:                 "Fetch BUG issues for a project",
	RunE:                  runBugsCommand,
}

// Init initializes the global configuration and logger for the command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runBugsCommand(cmd *cobra.Command, args []string) error {
	if err := validateBugsArgs(&bugOptions, args); err != nil {
		logger.Error("invalid bugs arguments", "error", err)
		return fmt.Errorf("invalid bugs arguments: %w", err)
	}

	client, err := sonar.NewFromConfig(AppConfig, logger)
	if err != nil {
		logger.Error("failed to build sonar client", "error", err)
		return err
	}

	projectKey := args[0]
	report, err := client.BugDetails(projectKey)
	if err != nil {
		logger.Error("failed to fetch bug details", "project", projectKey, "error", err)
		return err
	}

	return emitReport(report, bugOptions.OutputPath)
}

func init() {
	BugsCmd.Flags().StringVarP(&bugOptions.OutputPath, "output", "o", "", "write the JSON report to this path instead of stdout")
}
