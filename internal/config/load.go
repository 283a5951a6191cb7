package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration. Values resolve as environment (DIRTREE_*) over
// file over defaults. An explicit path must exist; when path is empty the
// default location is used only if a file is present there.
func Load(path string) (*Config, error) {
	reader := viper.New()
	setDefaults(reader)

	reader.SetEnvPrefix(envPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.AutomaticEnv()

	configFile, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		reader.SetConfigFile(configFile)
		if err := reader.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := reader.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(reader *viper.Viper) {
	defaults := Default()
	reader.SetDefault("version", defaults.Version)
	reader.SetDefault("tree.show_hidden", defaults.Tree.ShowHidden)
	reader.SetDefault("tree.dirs_only", defaults.Tree.DirsOnly)
	reader.SetDefault("tree.angular", defaults.Tree.Angular)
	reader.SetDefault("tree.gitignore", defaults.Tree.Gitignore)
	reader.SetDefault("tree.ignore_dirs", defaults.Tree.IgnoreDirs)
	reader.SetDefault("logging.level", defaults.Logging.Level)
	reader.SetDefault("logging.to_file", defaults.Logging.ToFile)
	reader.SetDefault("logging.json", defaults.Logging.JSON)
	reader.SetDefault("cache.enabled", defaults.Cache.Enabled)
}

// resolvePath returns the config file to read, or "" when there is none
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("config path %s is a directory", explicit)
		}
		return explicit, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return "", nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, nil
	}
	return "", nil
}
