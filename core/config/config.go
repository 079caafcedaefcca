// Package config holds the process configuration of the reflection runtime:
// logging, telemetry and router settings, read from YAML and overridden by
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbalogh/rttr/core/stringsx"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the loaded configuration.
const (
	EnvLoggingLevel      = "RTTR_LOGGING_LEVEL"
	EnvLoggingFormat     = "RTTR_LOGGING_FORMAT"
	EnvTelemetryEndpoint = "RTTR_TELEMETRY_ENDPOINT"
)

// Logging formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrCfgBytesEmpty   = errors.New("config bytes is empty")
	ErrInvalidFormat   = errors.New("invalid logging format")
	ErrEmptyMethodName = errors.New("disabled method name is empty")
)

// Config is the root configuration.
type Config struct {
	Logging   Logging   `yaml:"logging"`
	Telemetry Telemetry `yaml:"telemetry"`
	Router    Router    `yaml:"router"`
}

// Logging configures the process logger.
type Logging struct {
	// Level is a logrus level name: panic, fatal, error, warning, info, debug, trace.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Telemetry configures trace export. An empty endpoint disables export.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`
	// CACerts is a base64 encoded PEM bundle. When set, the exporter uses TLS.
	CACerts string `yaml:"ca_certs,omitempty"`
}

// Router configures method tables built by reflection.
type Router struct {
	// Policy names the binding policy of registered methods.
	Policy string `yaml:"policy,omitempty"`
	// DisabledMethods are left out of the method table.
	DisabledMethods []string `yaml:"disabled_methods,omitempty"`
	// TrimPrefixes are removed from method names on registration, first match wins.
	TrimPrefixes []string `yaml:"trim_prefixes,omitempty"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:  "warning",
			Format: FormatText,
		},
		Telemetry: Telemetry{
			ServiceName: "rttr",
		},
		Router: Router{
			Policy: "default",
		},
	}
}

// FromBytes parses YAML on top of the defaults and applies the environment.
func FromBytes(cfgBytes []byte) (*Config, error) {
	if len(cfgBytes) == 0 {
		return nil, ErrCfgBytesEmpty
	}

	cfg := Default()
	if err := yaml.Unmarshal(cfgBytes, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the YAML file at path.
func Load(path string) (*Config, error) {
	cfgBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return FromBytes(cfgBytes)
}

// ApplyEnv overrides fields with the environment variables that are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLoggingLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLoggingFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvTelemetryEndpoint); v != "" {
		c.Telemetry.Endpoint = v
	}
}

// Validate checks the values that cannot be checked by their consumers.
func (c *Config) Validate() error {
	if c.Logging.Format != "" && !stringsx.OneOf(c.Logging.Format, FormatText, FormatJSON) {
		return fmt.Errorf("%w: '%s'", ErrInvalidFormat, c.Logging.Format)
	}

	for _, name := range c.Router.DisabledMethods {
		if name == "" {
			return ErrEmptyMethodName
		}
	}

	return nil
}

// Bytes renders the configuration as YAML.
func (c *Config) Bytes() ([]byte, error) {
	return yaml.Marshal(c)
}
