// Package ioconfig provides I/O operations for loading configuration from
// files and the environment. This is an impure package that handles file
// system operations.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/sportsense/statsdb/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns the resulting
// Config with source info. If configPath is empty, the default location
// (~/.config/statsdb/config.yaml under homeDir) is tried; a missing
// default file falls back to built-in defaults plus environment overrides.
func Load(configPath, homeDir string) (*LoadResult, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	// Precedence: flags > env vars > config file > defaults.
	v.SetEnvPrefix("STATSDB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults must be registered before reading so AutomaticEnv knows
	// which keys to check.
	defaults := config.Defaults()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("database.busy_timeout_ms", defaults.Database.BusyTimeoutMS)
	v.SetDefault("ingest.stats_dir", defaults.Ingest.StatsDir)
	v.SetDefault("ingest.processed_log", defaults.Ingest.ProcessedLog)
	v.SetDefault("ingest.days_back", defaults.Ingest.DaysBack)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath := config.ConfigFilePath(homeDir)
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath != "" || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.HomeDir = homeDir

	result := &LoadResult{
		Config:     &cfg,
		SourcePath: usedConfigPath,
	}
	switch {
	case configFileRead:
		result.Source = "file"
	case hasEnvOverrides():
		result.Source = "defaults+env"
	default:
		result.Source = "defaults"
	}

	return result, nil
}

// hasEnvOverrides reports whether any STATSDB_ variable is set.
func hasEnvOverrides() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "STATSDB_") {
			return true
		}
	}
	return false
}
