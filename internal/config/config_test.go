package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultStaticDir, cfg.Server.StaticDir)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.True(t, cfg.SeedSampleData())
	assert.Equal(t, "default", cfg.Theme.Preset)
	assert.Equal(t, "0.0.0.0:8000", cfg.Address())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  shutdown_timeout: 3s
database:
  path: /tmp/board.db
  seed_sample_data: false
logging:
  level: debug
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultStaticDir, cfg.Server.StaticDir)
	assert.Equal(t, "/tmp/board.db", cfg.Database.Path)
	assert.False(t, cfg.SeedSampleData())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "#123456", cfg.Theme.Accent)
	// Unset colors come from the monochrome preset
	assert.Equal(t, MonochromeColorScheme().Subtle, cfg.Theme.Subtle)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  path: file.db
`)
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvHost, "localhost")
	t.Setenv(EnvDBPath, "env.db")
	t.Setenv(EnvStaticDir, "/srv/static")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "env.db", cfg.Database.Path)
	assert.Equal(t, "/srv/static", cfg.Server.StaticDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv(EnvPort, "eighty")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_DefaultPathFromXDG(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, "kanbanx")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 8123\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoad_ThemeFileMerges(t *testing.T) {
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  done_border: \"#00FF00\"\n"), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "#00FF00", cfg.Theme.DoneBorder)
	assert.Equal(t, DefaultColorScheme().TodoBorder, cfg.Theme.TodoBorder)
}

func TestColorScheme_ApplyDefaultsKeepsOverrides(t *testing.T) {
	scheme := ColorScheme{Title: "#ABCDEF"}
	scheme.ApplyDefaults()

	assert.Equal(t, "#ABCDEF", scheme.Title)
	assert.Equal(t, DefaultColorScheme().Accent, scheme.Accent)
	assert.Equal(t, "default", scheme.Preset)
}
