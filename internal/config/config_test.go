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
	t.Setenv("APP_NAME", "portal-api")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("S3_BUCKET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "portal-api", cfg.App.AppName)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 5.0, cfg.Copilot.RatePerSecond)
	assert.Equal(t, 10, cfg.Copilot.RateBurst)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_POOL_MAX_CONNS", "25")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "15m")
	t.Setenv("COPILOT_RATE_PER_SEC", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, int32(25), cfg.Database.PoolMaxConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 0.5, cfg.Copilot.RatePerSecond)
}

func TestLoad_InvalidValue(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_EXPIRES_IN")
}
