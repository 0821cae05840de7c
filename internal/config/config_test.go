package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withConfigFile(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
}

func TestLoadConfigFromYAML(t *testing.T) {
	withConfigFile(t, `
Application:
  LogLevel: debug
  PermissiveURLs: true
  APIURL: https://api.example.com
  ShareAddr: 127.0.0.1:8787
`)

	var cfg Config
	require.NoError(t, LoadConfig(&cfg))

	require.Equal(t, "debug", cfg.Application.LogLevel)
	require.True(t, cfg.Application.PermissiveURLs)
	require.Equal(t, "https://api.example.com", cfg.Application.APIURL)
	require.Equal(t, "127.0.0.1:8787", cfg.Application.ShareAddr)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	withConfigFile(t, `
Application:
  LogLevel: debug
  APIURL: https://yaml.example.com
`)

	t.Setenv("APP_API_URL", "https://env.example.com")

	var cfg Config
	require.NoError(t, LoadConfig(&cfg))

	require.Equal(t, "https://env.example.com", cfg.Application.APIURL)
	require.Equal(t, "debug", cfg.Application.LogLevel, "untouched fields keep yaml values")
}

func TestLoadConfigMissingFile(t *testing.T) {
	old := configPath
	configPath = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { configPath = old })

	t.Setenv("APP_LOGLEVEL", "warning")

	var cfg Config
	require.NoError(t, LoadConfig(&cfg))
	require.Equal(t, "warning", cfg.Application.LogLevel)
}
