package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "beverage-kg")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.NotContains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_SSL_MODE", "REDIS_HOST", "REDIS_PORT", "REDIS_TTL", "LOG_FORMAT", "LOG_LEVEL", "DB_POOL_MAX_CONNS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "beverage-kg", cfg.App.AppName)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Zero(t, cfg.Database.PoolMaxConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("DB_CONNECT_TIMEOUT", "3")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestSeconds_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, 5*time.Second, seconds("abc", 5*time.Second))
	assert.Equal(t, 5*time.Second, seconds("-1", 5*time.Second))
	assert.Equal(t, 2*time.Second, seconds("2", 5*time.Second))
}
