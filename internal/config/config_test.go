package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "admin@klowq.com", cfg.Admin.Email)
	require.Equal(t, "admin123", cfg.Admin.Password)
	require.Equal(t, DevSessionSecret, cfg.Session.Secret)
	require.Equal(t, "memory", cfg.Session.Backend)
	require.Equal(t, time.Hour, cfg.Session.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.Session.RefreshTTL)
	require.False(t, cfg.MinIO.Enabled())
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 5, cfg.RateLimit.LoginBurst)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATA_DIR", "/var/lib/dashboard")
	t.Setenv("SESSION_SECRET", "testsecret123456789012345678901234")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "/var/lib/dashboard", cfg.Data.Dir)
	require.Equal(t, "redis", cfg.Session.Backend)
	require.Equal(t, "cache:6380", cfg.Redis.Addr())
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 5*time.Second, cfg.RateLimit.Window)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.MinIO.Enabled())
}

func TestLoadConfig_MongoWithoutURIFallsBack(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Session.Backend)
}
