package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/wdbc/pkg/logging"
	"github.com/ssargent/wdbc/pkg/schema"
)

// Config represents the codec configuration
type Config struct {
	SchemaPaths []string `yaml:"schema_paths"`
	Logging     Logging  `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SchemaPaths: []string{},
		Logging: Logging{
			Level:  "info",
			Format: string(logging.FormatJSON),
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Relative schema paths are relative to the config file
	baseDir := filepath.Dir(configPath)
	for i, p := range config.SchemaPaths {
		if !filepath.IsAbs(p) {
			config.SchemaPaths[i] = filepath.Join(baseDir, p)
		}
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

// LoadSchemas loads every configured schema file into one registry
func (c *Config) LoadSchemas() (*schema.Registry, error) {
	reg := schema.NewRegistry()
	for _, p := range c.SchemaPaths {
		loaded, err := schema.LoadFile(p)
		if err != nil {
			return nil, err
		}
		if err := reg.Merge(loaded); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return reg, nil
}

// NewLogger builds the configured logger writing to w
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, logging.Format(c.Logging.Format))
}
