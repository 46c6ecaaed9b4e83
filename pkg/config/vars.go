package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "statsdb"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/statsdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the database and processed log.
// Returns ~/.local/share/statsdb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/statsdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatabasePath resolves the configured database path against the data
// directory when it is relative.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database.Path) {
		return c.Database.Path
	}
	return filepath.Join(DataDir(c.HomeDir), c.Database.Path)
}

// ProcessedLogPath resolves the configured processed-files log path against
// the data directory when it is relative.
func (c *Config) ProcessedLogPath() string {
	if filepath.IsAbs(c.Ingest.ProcessedLog) {
		return c.Ingest.ProcessedLog
	}
	return filepath.Join(DataDir(c.HomeDir), c.Ingest.ProcessedLog)
}
