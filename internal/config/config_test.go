package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.False(t, cfg.Database.URLConfigured)
	assert.Equal(t, "retail", cfg.Database.Name)
	assert.Equal(t, uint64(50), cfg.Database.MaxPoolSize)
	assert.Equal(t, DefaultAdminKey, cfg.Admin.Key)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("ADMIN_KEY", "s3cret")
	t.Setenv("DB_CONNECT_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URL)
	assert.True(t, cfg.Database.URLConfigured)
	assert.Equal(t, "shop", cfg.Database.Name)
	assert.Equal(t, "s3cret", cfg.Admin.Key)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "-1")

	_, err := Load()
	assert.Error(t, err)
}
