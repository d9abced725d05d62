package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/hrms-lite/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "API_URL", "API_TIMEOUT", "APP_ENV", "REDIS_ADDR", "SESSION_TTL",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUSTED_PROXIES", "DEVAPI_PORT", "DB_PATH",
	} {
		t.Setenv(k, "")
	}

	cfg := config.FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.True(t, cfg.Development())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, "8000", cfg.DevAPIPort)
	assert.Equal(t, "hrms.db", cfg.DBPath)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Empty(t, cfg.Warnings)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_URL", "https://hrms.example.com")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := config.FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://hrms.example.com", cfg.APIURL)
	assert.Equal(t, 2*time.Second, cfg.APITimeout)
	assert.False(t, cfg.Development())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestFromEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "ten seconds")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg := config.FromEnv()

	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, []string{
		`invalid duration for API_TIMEOUT ("ten seconds"), using default`,
		`invalid number for RATE_LIMIT_RPS ("fast"), using default`,
	}, cfg.Warnings)
}

func TestFromEnv_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, 172.16.0.0/12 ,,")

	cfg := config.FromEnv()

	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_MissingDotEnvIsAWarning(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg := config.Load()

	require.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], "error loading .env file")
	assert.Contains(t, cfg.Warnings[1], "RATE_LIMIT_BURST")
}
