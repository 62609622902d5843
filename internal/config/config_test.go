package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("RAILBOARD_PRIMARY_ENV", "local")
	t.Setenv("RAILBOARD_SERVER_PORT", "8080")
	t.Setenv("RAILBOARD_SERVER_READ_TIMEOUT", "10")
	t.Setenv("RAILBOARD_SERVER_WRITE_TIMEOUT", "10")
	t.Setenv("RAILBOARD_SERVER_IDLE_TIMEOUT", "60")
	t.Setenv("RAILBOARD_SERVER_CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("RAILBOARD_DATABASE_HOST", "localhost")
	t.Setenv("RAILBOARD_DATABASE_PORT", "5432")
	t.Setenv("RAILBOARD_DATABASE_USER", "railboard")
	t.Setenv("RAILBOARD_DATABASE_PASSWORD", "secret")
	t.Setenv("RAILBOARD_DATABASE_NAME", "railboard")
	t.Setenv("RAILBOARD_DATABASE_SSL_MODE", "disable")
	t.Setenv("RAILBOARD_AUTH_SECRET_KEY", "signing-secret")
	t.Setenv("RAILBOARD_AUTH_ADMIN_SECRET", "admin-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "signing-secret", cfg.Auth.SecretKey)
	assert.Equal(t, "admin-secret", cfg.Auth.AdminSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "railboard", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.NotEmpty(t, cfg.Observability.LogLevel)
	assert.NotEmpty(t, cfg.Observability.LogFormat)
}

func TestLoad_TokenLifetime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RAILBOARD_AUTH_TOKEN_LIFETIME", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RAILBOARD_AUTH_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RAILBOARD_PRIMARY_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
}
