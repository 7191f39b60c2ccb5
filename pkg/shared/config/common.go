package config

import (
	"crypto/tls"
	"time"
)

// BaseHTTPConfig holds common HTTP client settings.
type BaseHTTPConfig struct {
	Timeout         time.Duration
	TLSClientConfig *tls.Config
	Proxy           string
}

// RestyHttpClientConfig holds the settings applied to the resty HTTP client.
type RestyHttpClientConfig struct {
	BaseHTTPConfig
	Debug bool
}

// DefaultHttpConfig returns the base configuration applicable to all HTTP
// clients: a 30 second request timeout and TLS verification enabled.
func DefaultHttpConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		Timeout: 30 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		Proxy: "",
	}
}

// DefaultRestyConfig returns the resty-specific defaults.
func DefaultRestyConfig() RestyHttpClientConfig {
	return RestyHttpClientConfig{
		BaseHTTPConfig: DefaultHttpConfig(),
		Debug:          false,
	}
}
