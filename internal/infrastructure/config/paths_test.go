package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_FollowsEnvironment(t *testing.T) {
	root := isolateXDG(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", "panes"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(root, "state", "panes"), dirs.StateHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", "panes", "logs"), logDir)
}

func TestGetXDGDirs_PicksUpLaterChanges(t *testing.T) {
	isolateXDG(t)
	_, err := GetXDGDirs()
	require.NoError(t, err)

	moved := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", moved)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(moved, "panes", "config.toml"), file)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	isolateXDG(t)
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	devDir := filepath.Join(cwd, ".dev", "panes")
	assert.Equal(t, devDir, dirs.ConfigHome)
	assert.Equal(t, devDir, dirs.StateHome)
}
