package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sportsense/statsdb/internal/iofs"
	"github.com/sportsense/statsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	for _, dir := range []string{
		config.ConfigDir(home),
		config.DataDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Second run is a no-op.
	err = iofs.EnsureDirs(home)
	assert.NoError(t, err)
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	err := iofs.EnsureConfigFile(home)
	require.NoError(t, err)

	path := config.ConfigFilePath(home)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stats_dir")

	// An existing file is not overwritten.
	custom := []byte("log:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, custom, 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}

func TestEnsureConfigFileNoDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "missing")
	err := iofs.EnsureConfigFile(home)
	assert.Error(t, err)
}
