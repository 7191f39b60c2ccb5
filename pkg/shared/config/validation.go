package config

import (
	"fmt"
	"net/url"
)

// ValidateConfig checks the loaded configuration for values that can never
// work, regardless of which command runs.
func ValidateConfig(cfg *Config) error {
	if cfg.HttpClient.Timeout < 0 {
		return fmt.Errorf("http_client.timeout must not be negative")
	}

	if cfg.Sonar.BaseURL != "" {
		u, err := url.Parse(cfg.Sonar.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("sonar.base_url %q is not a valid URL", cfg.Sonar.BaseURL)
		}
	}

	return nil
}
