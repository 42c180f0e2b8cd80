package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TRAVEL_SESSION_BACKEND", "memory")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8091", cfg.APIBaseURL)
	assert.Equal(t, "auto", cfg.FallbackMode)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.ReadRetries)
	assert.Equal(t, "admin123", cfg.DevServerAdminKey)
	assert.Equal(t, 8091, cfg.DevServerPort)
	assert.Empty(t, cfg.SessionPath)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("TRAVEL_API_BASE_URL", "http://api.example:9000")
	t.Setenv("TRAVEL_FALLBACK_MODE", "OFF")
	t.Setenv("TRAVEL_SESSION_BACKEND", "sqlite")
	t.Setenv("TRAVEL_SESSION_PATH", "/tmp/s.db")
	t.Setenv("TRAVEL_READ_RETRIES", "3")
	t.Setenv("TRAVEL_BREAKER_FAILURES", "5")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://api.example:9000", cfg.APIBaseURL)
	assert.Equal(t, "off", cfg.FallbackMode)
	assert.Equal(t, "sqlite", cfg.SessionBackend)
	assert.Equal(t, "/tmp/s.db", cfg.SessionPath)
	assert.Equal(t, 3, cfg.ReadRetries)
	assert.Equal(t, uint32(5), cfg.BreakerFailures)
}

func TestNew_RejectsUnknownValues(t *testing.T) {
	t.Setenv("TRAVEL_FALLBACK_MODE", "sometimes")
	_, err := New()
	require.Error(t, err)

	t.Setenv("TRAVEL_FALLBACK_MODE", "auto")
	t.Setenv("TRAVEL_SESSION_BACKEND", "redis")
	_, err = New()
	require.Error(t, err)
}

func TestResolveDefaults_DerivesSessionPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg := Config{SessionBackend: "file", HTTPTimeout: time.Second}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "session.json", filepath.Base(cfg.SessionPath))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// missing file is fine
	require.NoError(t, LoadDotEnv())

	require.NoError(t, os.WriteFile(".env", []byte("TRAVEL_DEVSERVER_PORT=9191\n"), 0o600))
	t.Setenv("TRAVEL_DEVSERVER_PORT", "")
	require.NoError(t, os.Unsetenv("TRAVEL_DEVSERVER_PORT"))
	require.NoError(t, LoadDotEnv())
	t.Setenv("TRAVEL_SESSION_BACKEND", "memory")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.DevServerPort)
}
