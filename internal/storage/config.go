package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .td/).
	userConfigFile = ".tdconfig.yaml"

	// Default configuration values
	DefaultLogLevel      = "warn"
	DefaultMaxTitleWidth = 60
	DefaultColor         = true
)

// Config represents user configuration from .tdconfig.yaml.
// This file is user-managed and never written by td.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxTitleWidth truncates titles in `td list`. Zero or less disables truncation.
	MaxTitleWidth int `yaml:"max_title_width"`

	// Color enables ANSI colors when stdout is a terminal.
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		MaxTitleWidth: DefaultMaxTitleWidth,
		Color:         DefaultColor,
	}
}

// LoadConfig loads .tdconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .td/ (in the same directory).
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := s.ConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
