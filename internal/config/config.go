package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "dirtree"
	configFileName = "config.yml"
	envPrefix      = "DIRTREE"
)

// Config represents the application configuration structure
type Config struct {
	Version int           `mapstructure:"version" yaml:"version"`
	Tree    TreeConfig    `mapstructure:"tree" yaml:"tree"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
}

// TreeConfig holds the default traversal settings. Command-line flags win over these.
type TreeConfig struct {
	ShowHidden bool     `mapstructure:"show_hidden" yaml:"show_hidden"`
	DirsOnly   bool     `mapstructure:"dirs_only" yaml:"dirs_only"`
	Angular    bool     `mapstructure:"angular" yaml:"angular"`
	Gitignore  bool     `mapstructure:"gitignore" yaml:"gitignore"`
	IgnoreDirs []string `mapstructure:"ignore_dirs" yaml:"ignore_dirs"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	ToFile bool   `mapstructure:"to_file" yaml:"to_file"`
	JSON   bool   `mapstructure:"json" yaml:"json"`
}

// CacheConfig controls whether run summaries are stored for `dirtree last`
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Version: 1,
		Tree: TreeConfig{
			IgnoreDirs: []string{},
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns the platform-appropriate config file location
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory if config dir unavailable
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, appName, configFileName), nil
}
