// Package config provides configuration loading for the gitwrap CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// GitPath overrides the git binary location; empty means resolve from PATH.
	GitPath string `yaml:"git_path"`
	// DefaultRemote is the remote used when a command does not name one.
	DefaultRemote string `yaml:"default_remote"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultRemote: "origin",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".gitwrap", "config.yaml")
}

// LoadConfig loads configuration from the specified file path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadConfigWithFallback loads configuration from file with fallback to default.
func LoadConfigWithFallback(configPath string) *Config {
	if config, err := LoadConfig(configPath); err == nil {
		return config
	}
	return DefaultConfig()
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.GitPath != "" {
		if _, err := os.Stat(c.GitPath); err != nil {
			return fmt.Errorf("git_path is not accessible: %w", err)
		}
	}
	if c.DefaultRemote == "" {
		c.DefaultRemote = "origin"
	}
	return nil
}
