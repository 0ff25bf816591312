package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "DB_DSN", "LOG_LEVEL", "CORS_ORIGINS", "RATE_RPS", "RATE_BURST", "MAX_BODY_BYTES", "ENABLE_HSTS"} {
		_ = os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, float64(50), cfg.RateRPS)
	assert.Equal(t, 100, cfg.RateBurst)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.False(t, cfg.EnableHSTS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_RPS", "2.5")
	t.Setenv("ENABLE_HSTS", "true")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateRPS)
	assert.True(t, cfg.EnableHSTS)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_BURST", "lots")
	cfg := Load()
	assert.Equal(t, 100, cfg.RateBurst)
}
