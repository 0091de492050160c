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
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9091", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "superstar-orders", cfg.Storage.Key)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "superstar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":8080"
  shutdown_timeout: 2s
log:
  level: debug
storage:
  driver: memory
`), 0o644))
	t.Setenv("SUPERSTAR_LOG_FORMAT", "console")
	t.Setenv("SUPERSTAR_STORAGE_KEY", "other-slot")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "other-slot", cfg.Storage.Key)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SUPERSTAR_HTTP_ADDR=:7000\n"), 0o644))
	// godotenv does not override, so make sure the variable is unset and restored afterwards
	t.Setenv("SUPERSTAR_HTTP_ADDR", "")
	require.NoError(t, os.Unsetenv("SUPERSTAR_HTTP_ADDR"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	t.Setenv("SUPERSTAR_STORAGE_DRIVER", "postgres")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown storage.driver")
}
