package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ok, err := Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".medref", "content"), cfg.ContentDir)
	assert.Equal(t, "intermediate", cfg.DefaultLevel)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestSaveLoad_RoundTripExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Save(&Config{ContentDir: "~/notes", Excludes: []string{"*.tmp"}, LogLevel: "info"}))

	ok, err := Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), cfg.ContentDir)
	assert.Equal(t, []string{"*.tmp"}, cfg.Excludes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DefaultLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".medref")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "medref.yaml"), []byte("content_dir: [\n"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestResolve_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvContentDir, "")
	t.Setenv(EnvDefaultLevel, "")

	dir := filepath.Join(home, ".medref")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte(EnvContentDir+"=~/from-dotenv\n"+EnvLogLevel+"=error\n"), 0o600))
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "from-dotenv"), cfg.ContentDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "intermediate", cfg.DefaultLevel)
}

func TestResolve_UnreadableDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvContentDir, "/content")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvDefaultLevel, "basic")

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".medref", ".env"), 0o755))

	_, err := Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dotenv")
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), got)

	got, err = ExpandPath("/abs")
	require.NoError(t, err)
	assert.Equal(t, "/abs", got)
}
