package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Environment variables applied over the file-supplied configuration.
const (
	EnvSonarHostURL = "SONAR_HOST_URL"
	EnvSonarToken   = "SONAR_TOKEN"
)

// ValidateConfigPath checks that the given path points to a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig builds the application configuration. The YAML file is
// optional; environment variables are applied on top of it and win.
// Credential presence is not checked here - commands that never touch the
// API must run without a token, so that check belongs to the client
// constructor.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := LoadYAML(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides maps the environment contract onto the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvSonarHostURL); v != "" {
		cfg.Sonar.BaseURL = v
	}
	if v := os.Getenv(EnvSonarToken); v != "" {
		cfg.Sonar.Token = v
	}
}
