package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Config{
		ContentPath:         "",
		RevealInterval:      35 * time.Millisecond,
		NotificationStagger: 500 * time.Millisecond,
		NotificationVisible: 3 * time.Second,
		NotificationFadeOut: 300 * time.Millisecond,
		FlashDuration:       2 * time.Second,
		LogLevel:            "info",
		LogEncoding:         "json",
		LogPath:             filepath.Join(home, ".ledgerline", "ledgerline.log"),
	}, cfg)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ledgerline")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[content]
path = "/tmp/story.toml"

[reveal]
ms_per_char = 0

[log]
level = "debug"
encoding = "console"
`), 0o600))

	v := viper.New()
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/story.toml", cfg.ContentPath)
	assert.Equal(t, time.Duration(0), cfg.RevealInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogEncoding)
	assert.Equal(t, 500*time.Millisecond, cfg.NotificationStagger)
	assert.Equal(t, "/tmp/story.toml", v.GetString(KeyContentPath))
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LEDGERLINE_CONTENT_PATH", "/srv/story.toml")
	t.Setenv("LEDGERLINE_NOTIFY_STAGGER_MS", "250")

	dir := filepath.Join(home, ".ledgerline")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[content]\npath = \"/tmp/story.toml\"\n"), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/srv/story.toml", cfg.ContentPath)
	assert.Equal(t, 250*time.Millisecond, cfg.NotificationStagger)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ledgerline")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[content\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
