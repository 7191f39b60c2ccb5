package config

import (
	"time"
)

// Config is the application-wide configuration, loaded once at startup.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HttpClient HttpClient `yaml:"http_client"`
	Sonar      Sonar      `yaml:"sonar"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type HttpClient struct {
	Debug           *bool           `yaml:"debug"`
	Timeout         time.Duration   `yaml:"timeout"`
	TlsClientConfig TlsClientConfig `yaml:"tls_client_config"`
	Proxy           Proxy           `yaml:"proxy"`
}

type TlsClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Sonar holds the upstream analysis service connection settings. Both values
// can be supplied by the SONAR_HOST_URL and SONAR_TOKEN environment
// variables, which take precedence over the file.
type Sonar struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}
