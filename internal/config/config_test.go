package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))

	v, err := New(flags)
	require.NoError(t, err)

	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := load(t, "--data-dir", dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "bolt", cfg.Storage)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.Bell)
	assert.Empty(t, cfg.AlarmCommand)
}

func TestLoad_ConfigFileInDataDir(t *testing.T) {
	dir := t.TempDir()

	yaml := "storage: sqlite\nbell: false\nalarm_command: paplay alarm.oga\ntick_interval: 500ms\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := load(t, "--data-dir", dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage)
	assert.False(t, cfg.Bell)
	assert.Equal(t, "paplay alarm.oga", cfg.AlarmCommand)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage: bolt\nlog_level: warn\n"), 0600))

	t.Setenv("CLOCKR_STORAGE", "sqlite")

	cfg, err := load(t, "--data-dir", dir, "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage, "env beats config file")
	assert.Equal(t, slog.LevelError, cfg.LogLevel, "flag beats config file")
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	_, err := load(t, "--data-dir", t.TempDir(), "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := load(t, "--data-dir", dir, "--storage", "redis")
	assert.ErrorContains(t, err, "invalid storage")

	_, err = load(t, "--data-dir", dir, "--tick", "1ms")
	assert.ErrorContains(t, err, "below")

	_, err = load(t, "--data-dir", dir, "--log-level", "chatty")
	assert.ErrorContains(t, err, "invalid log level")
}
