package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/classikwoods_test")
	t.Setenv("S3_BUCKET", "cw-media-test")
}

func TestLoad(t *testing.T) {
	t.Run("defaults fill everything optional", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 10, cfg.Database.MaxConns)
		assert.Equal(t, "us-east-1", cfg.Storage.Region)
		assert.Equal(t, 5*24*time.Hour, cfg.Auth.SessionTTL)
		assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
		assert.Equal(t, "development", cfg.App.Environment)
	})

	t.Run("missing DSN fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_DSN", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_DSN")
	})

	t.Run("missing bucket fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("S3_BUCKET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "S3_BUCKET")
	})

	t.Run("invalid optional values fall back to defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_MAX_CONNS", "lots")
		t.Setenv("SESSION_TTL", "forever")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Database.MaxConns)
		assert.Equal(t, 5*24*time.Hour, cfg.Auth.SessionTTL)
	})
}
