package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all fraudclean settings
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Imputation ImputationConfig `yaml:"imputation"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`   // debug, info, warn, error
	Format string `yaml:"format"`  // text, json
	SeqURL string `yaml:"seq_url"` // optional Seq ingestion endpoint, empty disables it
}

// ImputationConfig selects what the verify command cleans
type ImputationConfig struct {
	Column string `yaml:"column"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Imputation: ImputationConfig{
			Column: "age",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("FRAUDCLEAN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if url := os.Getenv("FRAUDCLEAN_SEQ_URL"); url != "" {
		c.Logging.SeqURL = url
	}
}

// Validate rejects settings the program cannot act on
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}

	if strings.TrimSpace(c.Imputation.Column) == "" {
		return fmt.Errorf("imputation.column must not be empty")
	}
	return nil
}
