package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickies/internal/board"
	"stickies/internal/storage"
)

func isolateDirs(t *testing.T) (configDir, dataHome string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return filepath.Join(root, "config", appName), filepath.Join(root, "data")
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, configFileName+"."+configFileType)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	configDir, dataHome := isolateDirs(t)

	cfg, err := loadConfig(nil, "", configDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, appName), cfg.DataDir)
	assert.Equal(t, storage.BackendFile, cfg.Backend)
	assert.True(t, cfg.Confirmations)
	assert.Equal(t, board.DefaultPlacement(), cfg.Placement())
	assert.Equal(t, board.MinWidth, cfg.Reducer().MinWidth)
	assert.Equal(t, filepath.Join(cfg.DataDir, "stickies.log"), cfg.LogPath())
}

func TestLoadConfigFile(t *testing.T) {
	configDir, _ := isolateDirs(t)
	writeConfig(t, configDir, `
backend: sqlite
confirmations: false
log_file: "off"
note:
  default_width: 240
  min_width: 160
  stack_offset: 32
`)

	cfg, err := loadConfig(nil, "", configDir)

	require.NoError(t, err)
	assert.Equal(t, storage.BackendSQLite, cfg.Backend)
	assert.False(t, cfg.Confirmations)
	assert.Empty(t, cfg.LogPath())
	assert.Equal(t, 240.0, cfg.Placement().DefaultWidth)
	assert.Equal(t, 32.0, cfg.Placement().StackOffset)
	assert.Equal(t, 160.0, cfg.Reducer().MinWidth)
	assert.Equal(t, board.MinHeight, cfg.Reducer().MinHeight)
}

func TestLoadConfigEnvironment(t *testing.T) {
	configDir, _ := isolateDirs(t)
	t.Setenv("STICKIES_BACKEND", "memory")
	t.Setenv("STICKIES_NOTE_INITIAL_X", "100")

	cfg, err := loadConfig(nil, "", configDir)

	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg.Backend)
	assert.Equal(t, 100.0, cfg.Placement().InitialX)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown backend", "backend: redis\n"},
		{"minimum above default", "note:\n  min_width: 300\n"},
		{"minimum too small", "note:\n  min_height: 10\n  default_height: 10\n"},
		{"negative offset", "note:\n  stack_offset: -5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configDir, _ := isolateDirs(t)
			writeConfig(t, configDir, tc.body)

			_, err := loadConfig(nil, "", configDir)

			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadConfigExplicitFileMustExist(t *testing.T) {
	configDir, _ := isolateDirs(t)

	_, err := loadConfig(nil, filepath.Join(configDir, "missing.yaml"), configDir)

	assert.ErrorContains(t, err, "read config")
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	configDir, _ := isolateDirs(t)
	writeConfig(t, configDir, "backend: sqlite\n")
	dataDir := t.TempDir()

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--backend", "memory", "--data-dir", dataDir}))
	cfg, err := loadConfig(cmd, "", configDir)

	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg.Backend)
	assert.Equal(t, dataDir, cfg.DataDir)
}
