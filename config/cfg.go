package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	FigmaConfig struct {
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	}

	DocumentConfig struct {
		DefaultFrame        string `yaml:"default_frame"`
		FallbackFont        string `yaml:"fallback_font"`
		PlaceholderFill     string `yaml:"placeholder_fill"`
		OutputNameFromFrame bool   `yaml:"output_name_from_frame"`
	}

	Config struct {
		Version   int            `yaml:"version"`
		Figma     FigmaConfig    `yaml:"figma"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Timeout returns the configured API timeout as a duration.
func (c *FigmaConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func unmarshalConfig(data []byte, cfg *Config) error {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

func validLogLevel(level string) bool {
	switch level {
	case "none", "normal", "debug":
		return true
	}
	return false
}

func (cfg *Config) validate() error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	if cfg.Figma.BaseURL == "" {
		return fmt.Errorf("figma.base_url cannot be empty")
	}
	if cfg.Figma.TimeoutSec <= 0 {
		return fmt.Errorf("figma.timeout_sec must be positive, got %d", cfg.Figma.TimeoutSec)
	}
	if !validLogLevel(cfg.Logging.ConsoleLogger.Level) {
		return fmt.Errorf("unknown console log level %q", cfg.Logging.ConsoleLogger.Level)
	}
	if !validLogLevel(cfg.Logging.FileLogger.Level) {
		return fmt.Errorf("unknown file log level %q", cfg.Logging.FileLogger.Level)
	}
	switch cfg.Logging.FileLogger.Mode {
	case "", "append", "overwrite":
	default:
		return fmt.Errorf("unknown file log mode %q", cfg.Logging.FileLogger.Mode)
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and validates the
// result. Empty path yields defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshalConfig(defaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("broken embedded default configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration file '%s': %w", path, err)
		}
		if err := unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file '%s': %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Prepare returns the default embedded configuration.
func Prepare() ([]byte, error) {
	return bytes.Clone(defaultConfig), nil
}

// Dump serializes the actual configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return Prepare()
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}
