package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Service.Timeout)
	assert.Zero(t, cfg.Service.RateLimit)
	assert.Zero(t, cfg.Service.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 120, cfg.Server.RateLimit.RequestsPerMinute)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("NIP24_URL", "http://localhost:9000/api")
	t.Setenv("NIP24_KEY_ID", "id")
	t.Setenv("NIP24_KEY", "secret")
	t.Setenv("NIP24_TEST", "true")
	t.Setenv("NIP24_TIMEOUT", "15")
	t.Setenv("NIP24_RATE_LIMIT", "2.5")
	t.Setenv("NIP24_CACHE_TTL", "10m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVER_RATE_LIMIT_BURST", "not-a-number")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api", cfg.Service.URL)
	assert.True(t, cfg.Service.Test)
	assert.Equal(t, 15*time.Second, cfg.Service.Timeout)
	assert.Equal(t, 2.5, cfg.Service.RateLimit)
	assert.Equal(t, 10*time.Minute, cfg.Service.CacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Server.RateLimit.BurstSize, "invalid values keep the default")
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("NIP24_RATE_LIMIT", "-1")
	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NIP24_APP=FileApp/1.0\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NIP24_APP") })

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FileApp/1.0", cfg.Service.App)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRequireCredentials(t *testing.T) {
	assert.NoError(t, config.ServiceConfig{Test: true}.RequireCredentials())
	assert.NoError(t, config.ServiceConfig{KeyID: "id", Key: "k"}.RequireCredentials())
	assert.Error(t, config.ServiceConfig{KeyID: "id"}.RequireCredentials())
}
