package config_test

import (
	"path/filepath"
	"testing"

	"github.com/sportsense/statsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "statsdb"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "statsdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "statsdb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "stats.db", cfg.Database.Path)
		assert.Equal(t, 5000, cfg.Database.BusyTimeoutMS)

		assert.Equal(t, "data/raw/stats", cfg.Ingest.StatsDir)
		assert.Equal(t, "processed_stats_files.log", cfg.Ingest.ProcessedLog)
		assert.Equal(t, 0, cfg.Ingest.DaysBack)

		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "stderr", cfg.Log.Destination)
	})
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []config.Option
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "sets database path",
			opts: []config.Option{config.OptDatabasePath("/tmp/x.db")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
			},
		},
		{
			name: "rejects empty database path",
			opts: []config.Option{config.OptDatabasePath("  ")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "stats.db", cfg.Database.Path)
			},
		},
		{
			name: "sets days back",
			opts: []config.Option{config.OptIngestDaysBack(30)},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 30, cfg.Ingest.DaysBack)
			},
		},
		{
			name: "rejects negative days back",
			opts: []config.Option{config.OptIngestDaysBack(-1)},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 0, cfg.Ingest.DaysBack)
			},
		},
		{
			name: "rejects unknown log level",
			opts: []config.Option{config.OptLogLevel("chatty")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name: "normalizes log format case",
			opts: []config.Option{config.OptLogFormat("JSON")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Log.Format)
			},
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			cfg := config.New(v.opts...)
			v.check(t, cfg)
		})
	}
}

func TestPathResolution(t *testing.T) {
	cfg := config.New(config.OptHomeDir("/home/u"))

	assert.Equal(t,
		filepath.Join("/home/u", ".local", "share", "statsdb", "stats.db"),
		cfg.DatabasePath())
	assert.Equal(t,
		filepath.Join("/home/u", ".local", "share", "statsdb",
			"processed_stats_files.log"),
		cfg.ProcessedLogPath())

	abs := config.New(
		config.OptHomeDir("/home/u"),
		config.OptDatabasePath("/var/lib/statsdb/stats.db"),
	)
	assert.Equal(t, "/var/lib/statsdb/stats.db", abs.DatabasePath())
}
