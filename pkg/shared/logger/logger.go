package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/quality-insights/quality-insights/pkg/shared/config"
)

// NewLogger creates a named hclog.Logger based on the loaded configuration.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		DisableTime:     config.GetBoolValue(cfg, "Logger.DisableTime", true),
		JSONFormat:      config.GetBoolValue(cfg, "Logger.JSONFormat", false),
		IncludeLocation: config.GetBoolValue(cfg, "Logger.IncludeLocation", false),
		Output:          os.Stdout,
		Level:           determineLogLevel(cfg),
	})
}

// determineLogLevel resolves the log level from the environment first, then
// the configuration, defaulting to INFO.
func determineLogLevel(cfg *config.Config) hclog.Level {
	if levelEnv := os.Getenv("QUALITY_INSIGHTS_LOG_LEVEL"); levelEnv != "" {
		return parseLogLevel(strings.ToUpper(levelEnv))
	}
	if cfg != nil {
		return parseLogLevel(strings.ToUpper(cfg.Logger.Level))
	}
	return hclog.Info
}

// parseLogLevel converts a string level to hclog.Level.
func parseLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO", "":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}
