package vulnerabilities

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
	vulnOptions runOptions

	exampleVulnerabilitiesUsage = `  # Fetch merged vulnerabilities and security hotspots for a project
  quality-insights vulnerabilities my_org_my-project

  # Write the report to a file instead of stdout
  quality-insights vulnerabilities --output /path/to/vulns.json my_org_my-project

  # Write the findings as a SARIF report
  quality-insights vulnerabilities --sarif --output /path/to/vulns.sarif my_org_my-project`
)

type runOptions struct {
	OutputPath string
	Sarif      bool
}

// VulnerabilitiesCmd represents the vulnerabilities command.
var VulnerabilitiesCmd = &cobra.Command{
	Use:                   "vulnerabilities [--sarif] [--output/-o PATH] PROJECT_KEY",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleVulnerabilitiesUsage,
	Short:                 "Fetch VULNERABILITY issues and security hotspots for a project",
	RunE:                  runVulnerabilitiesCommand,
}

// Init initializes the global configuration and logger for the command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runVulnerabilitiesCommand(cmd *cobra.Command, args []string) error {
	if err := validateVulnerabilitiesArgs(&vulnOptions, args); err != nil {
		logger.Error("invalid vulnerabilities arguments", "error", err)
		return fmt.Errorf("invalid vulnerabilities arguments: %w", err)
	}

	client, err := sonar.NewFromConfig(AppConfig, logger)
	if err != nil {
		logger.Error("failed to build sonar client", "error", err)
		return err
	}

	projectKey := args[0]
	report, err := client.VulnerabilityDetails(projectKey)
	if err != nil {
		logger.Error("failed to fetch vulnerability details", "project", projectKey, "error", err)
		return err
	}

	if vulnOptions.Sarif {
		return emitSarifReport(report, vulnOptions.OutputPath)
	}
	return emitReport(report, vulnOptions.OutputPath)
}

func init() {
	VulnerabilitiesCmd.Flags().StringVarP(&vulnOptions.OutputPath, "output", "o", "", "write the report to this path instead of stdout")
	VulnerabilitiesCmd.Flags().BoolVar(&vulnOptions.Sarif, "sarif", false, "emit the findings as a SARIF 2.1.0 report")
}
