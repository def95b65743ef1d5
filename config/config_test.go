package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "./exports", cfg.Export.OutputDir)
	assert.Equal(t, 92, cfg.Export.Quality)
	assert.Equal(t, 2.0, cfg.Export.Scale)
	assert.Equal(t, 300*time.Millisecond, cfg.Export.SettleDelay)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
export:
  output_dir: "/tmp/receipts"
  quality: 85
  scale: 3
  settle_delay: "50ms"
log:
  level: "debug"
  pretty: true
`)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "/tmp/receipts", cfg.Export.OutputDir)
	assert.Equal(t, 85, cfg.Export.Quality)
	assert.Equal(t, 3.0, cfg.Export.Scale)
	assert.Equal(t, 50*time.Millisecond, cfg.Export.SettleDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BRS_SERVER_PORT", "9999")
	t.Setenv("BRS_EXPORT_QUALITY", "75")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 75, cfg.Export.Quality)
}

func TestLoad_InvalidQuality(t *testing.T) {
	t.Setenv("BRS_EXPORT_QUALITY", "0")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_InvalidScale(t *testing.T) {
	t.Setenv("BRS_EXPORT_SCALE", "-1")

	_, err := Load("")
	require.Error(t, err)
}
