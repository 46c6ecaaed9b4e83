package config

import (
	"log/slog"
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabasePath sets the location of the SQLite database file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseBusyTimeoutMS sets the SQLite busy timeout in milliseconds.
func OptDatabaseBusyTimeoutMS(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Busy Timeout", i) {
			c.Database.BusyTimeoutMS = i
		}
	}
}

// OptIngestStatsDir sets the root directory of the scraper CSV tree.
func OptIngestStatsDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Stats Dir", s) {
			c.Ingest.StatsDir = s
		}
	}
}

// OptIngestProcessedLog sets the path of the processed-files log.
func OptIngestProcessedLog(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Processed Log", s) {
			c.Ingest.ProcessedLog = s
		}
	}
}

// OptIngestDaysBack restricts ingestion to the last n days of match dates.
// Zero disables the restriction.
func OptIngestDaysBack(i int) Option {
	return func(c *Config) {
		if i < 0 {
			slog.Warn("Ignoring negative Days Back", "value", i)
			return
		}
		c.Ingest.DaysBack = i
	}
}

// OptLogLevel sets the log level: debug, info, warn, error.
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "debug", "info", "warn", "error":
			c.Log.Level = s
		default:
			slog.Warn("Ignoring unknown Log Level", "value", s)
		}
	}
}

// OptLogFormat sets the log format: json or text.
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "json", "text":
			c.Log.Format = s
		default:
			slog.Warn("Ignoring unknown Log Format", "value", s)
		}
	}
}

// OptLogDestination sets the log destination: stdout, stderr or file.
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "stdout", "stderr", "file":
			c.Log.Destination = s
		default:
			slog.Warn("Ignoring unknown Log Destination", "value", s)
		}
	}
}

// OptHomeDir sets the base directory for config, data and log files.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}

func isValidString(field, s string) bool {
	if s == "" {
		slog.Warn("Ignoring empty value", "field", field)
		return false
	}
	return true
}

func isValidInt(field string, i int) bool {
	if i <= 0 {
		slog.Warn("Ignoring non-positive value", "field", field, "value", i)
		return false
	}
	return true
}
