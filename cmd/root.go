package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/quality-insights/quality-insights/cmd/bugs"
	"github.com/quality-insights/quality-insights/cmd/qualitygate"
	"github.com/quality-insights/quality-insights/cmd/version"
	"github.com/quality-insights/quality-insights/cmd/vulnerabilities"
	"github.com/quality-insights/quality-insights/pkg/shared/config"
	"github.com/quality-insights/quality-insights/pkg/shared/logger"
)

var (
	cfgFile   string
	AppConfig *config.Config
	appLogger hclog.Logger
	rootCmd   = &cobra.Command{
		Use:                   "quality-insights [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Quality Insights aggregates quality data from SonarQube/SonarCloud.",
		Long: `Quality Insights fetches bugs, vulnerabilities, security hotspots and
	quality gate verdicts for a project from a SonarQube or SonarCloud instance
	and reshapes them into stable JSON reports.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; SONAR_HOST_URL and SONAR_TOKEN env vars take precedence)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(bugs.BugsCmd)
	rootCmd.AddCommand(vulnerabilities.VulnerabilitiesCmd)
	rootCmd.AddCommand(qualitygate.QualityGateCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	appLogger = logger.NewLogger(AppConfig, "core")

	bugs.Init(AppConfig, appLogger)
	vulnerabilities.Init(AppConfig, appLogger)
	qualitygate.Init(AppConfig, appLogger)
}
