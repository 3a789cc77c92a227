package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Store.DataDir)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server:\n  addr: 127.0.0.1:9999\nstore:\n  data_dir: /tmp/sf\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("SERVICOFACIL_LOG_LEVEL", "debug")
	t.Setenv("SERVICOFACIL_SERVER_ADDR", "127.0.0.1:7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	// env wins over file, file wins over defaults
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/sf", cfg.Store.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
