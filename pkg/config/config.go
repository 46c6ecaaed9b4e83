// Package config provides configuration management for statsdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Loading from files and environment happens in internal/ioconfig.
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify Config
//   - Invalid options are rejected with a warning - config remains valid
//
// # Environment Variables
//
// Use STATSDB_ prefix with underscores for nesting:
//
//	STATSDB_DATABASE_PATH=/var/lib/statsdb/stats.db
//	STATSDB_INGEST_STATS_DIR=data/raw/stats
//	STATSDB_LOG_LEVEL=info
package config

// Config represents the complete statsdb configuration.
type Config struct {
	// Database contains embedded SQLite settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Ingest contains settings for the stats ingestion batch.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It is set by the CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file. A relative path
	// is resolved against the statsdb data directory.
	Path string `mapstructure:"path" yaml:"path"`

	// BusyTimeoutMS is the SQLite busy timeout in milliseconds.
	BusyTimeoutMS int `mapstructure:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// IngestConfig contains settings for the ingestion batch.
type IngestConfig struct {
	// StatsDir is the root of the scraper's CSV tree:
	// <stats_dir>/<sport>/<competition>/<year>/<month>/<day>/<file>.csv
	StatsDir string `mapstructure:"stats_dir" yaml:"stats_dir"`

	// ProcessedLog is the path of the processed-files log, one absolute
	// file path per line. Files listed there are skipped unconditionally.
	ProcessedLog string `mapstructure:"processed_log" yaml:"processed_log"`

	// DaysBack restricts ingestion to files whose match date falls within
	// the last DaysBack days. Zero means no restriction.
	DaysBack int `mapstructure:"days_back" yaml:"days_back"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is one of json, text.
	Format string `mapstructure:"format" yaml:"format"`

	// Destination is one of stdout, stderr, file.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values. The result is always valid.
func New(opts ...Option) *Config {
	res := &Config{
		Database: DatabaseConfig{
			Path:          "stats.db",
			BusyTimeoutMS: 5000,
		},
		Ingest: IngestConfig{
			StatsDir:     "data/raw/stats",
			ProcessedLog: "processed_stats_files.log",
			DaysBack:     0,
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}

	for _, opt := range opts {
		opt(res)
	}

	return res
}

// Defaults returns the built-in default configuration. It is used by the
// loader to seed viper defaults so environment overrides resolve.
func Defaults() *Config {
	return New()
}
