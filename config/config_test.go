package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "development")
	t.Setenv("CALORIX_DATA_DIR", t.TempDir())
	t.Setenv("CALORIX_STORE", "")
	t.Setenv("CALORIX_SQLITE_PATH", "")
	t.Setenv("CALORIX_REDIS_URL", "")
	t.Setenv("CALORIX_SYNC_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, filepath.Join(cfg.DataDir, "calorix.db"), cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Zero(t, cfg.SyncInterval)
	assert.DirExists(t, filepath.Dir(cfg.SQLitePath))
}

func TestLoadConfigExplicitValues(t *testing.T) {
	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "development")
	t.Setenv("CALORIX_DATA_DIR", t.TempDir())
	t.Setenv("CALORIX_STORE", "redis")
	t.Setenv("CALORIX_REDIS_URL", "redis-host:6380")
	t.Setenv("CALORIX_REDIS_PASSWORD", "hunter2")
	t.Setenv("CALORIX_REDIS_DB", "3")
	t.Setenv("CALORIX_SYNC_INTERVAL", "45m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis-host:6380", cfg.RedisURL)
	assert.Equal(t, "hunter2", cfg.RedisPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 45*time.Minute, cfg.SyncInterval)
}

func TestLoadConfigTestEnvironmentStaysInMemory(t *testing.T) {
	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Empty(t, cfg.SQLitePath)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "development")
	t.Setenv("CALORIX_DATA_DIR", t.TempDir())
	t.Setenv("CALORIX_STORE", "postgres")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "development")
	t.Setenv("CALORIX_DATA_DIR", t.TempDir())
	t.Setenv("CALORIX_STORE", "redis")
	t.Setenv("CALORIX_REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "false")
	t.Setenv("CALORIX_ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CALORIX_ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())
}

func TestParseInterval(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseInterval(""))
	assert.Equal(t, time.Duration(0), parseInterval("garbage"))
	assert.Equal(t, time.Duration(0), parseInterval("-1h"))
	assert.Equal(t, 2*time.Hour, parseInterval("2h"))
}
