package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv(EnvSonarHostURL, "")
	t.Setenv(EnvSonarToken, "")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Empty(t, cfg.Sonar.BaseURL)
	assert.Empty(t, cfg.Sonar.Token)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv(EnvSonarHostURL, "")
	t.Setenv(EnvSonarToken, "")

	path := writeConfigFile(t, `
logger:
  level: debug
http_client:
  timeout: 10s
sonar:
  base_url: https://sonar.example.com
  token: file-token
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 10*time.Second, cfg.HttpClient.Timeout)
	assert.Equal(t, "https://sonar.example.com", cfg.Sonar.BaseURL)
	assert.Equal(t, "file-token", cfg.Sonar.Token)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
sonar:
  base_url: https://sonar.example.com
  token: file-token
`)
	t.Setenv(EnvSonarHostURL, "https://sonarcloud.io")
	t.Setenv(EnvSonarToken, "env-token")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://sonarcloud.io", cfg.Sonar.BaseURL)
	assert.Equal(t, "env-token", cfg.Sonar.Token)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))

	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name: "valid base url",
			cfg:  Config{Sonar: Sonar{BaseURL: "https://sonarcloud.io"}},
		},
		{
			name:    "base url without scheme",
			cfg:     Config{Sonar: Sonar{BaseURL: "sonarcloud.io"}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{HttpClient: HttpClient{Timeout: -time.Second}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(&tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetBoolValue(t *testing.T) {
	yes := true
	cfg := &Config{HttpClient: HttpClient{Debug: &yes}}

	assert.True(t, GetBoolValue(cfg, "HttpClient.Debug", false))
	assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true), "unset pointer falls back to the default")
	assert.False(t, GetBoolValue(cfg, "No.Such.Field", false))
	assert.True(t, GetBoolValue(nil, "HttpClient.Debug", true))
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, 30*time.Second, SetThen(time.Duration(0), 30*time.Second))
	assert.Equal(t, 5*time.Second, SetThen(5*time.Second, 30*time.Second))
	assert.Equal(t, "fallback", SetThen("", "fallback"))
}
