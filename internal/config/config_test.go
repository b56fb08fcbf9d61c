package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "DATA_DIR", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://earthly.app ,")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, []string{"http://localhost:3000", "https://earthly.app"}, cfg.CORSOrigins)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestLoadRateLimitConfigNormalizes(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_ENABLED", "off")

	cfg := LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Second, cfg.TTL)
}

func TestLoadRateLimitConfigBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "not-a-duration")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, time.Second, cfg.RefillInterval)
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")

	cfg := LoadRedisConfig()
	assert.Equal(t, "cache:6380", cfg.Addr)
	assert.Equal(t, 2, cfg.DB)
	assert.True(t, cfg.TLS)

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	assert.Equal(t, "redis:6379", LoadRedisConfig().Addr)
}

func TestLoadEventsConfig(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://u:p@mq:5672/")
	t.Setenv("EVENTS_ENABLED", "true")
	t.Setenv("EVENTS_QUEUE", "")

	cfg := LoadEventsConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "amqp://u:p@mq:5672/", cfg.URL)
	assert.Equal(t, "globe.dataset.built", cfg.Queue)
}

func TestRedisTLSVerifiesByDefault(t *testing.T) {
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("REDIS_TLS_INSECURE", "")

	cfg := LoadRedisConfig()
	tlsConf := cfg.tlsConfig()
	require.NotNil(t, tlsConf)
	assert.False(t, tlsConf.InsecureSkipVerify)

	t.Setenv("REDIS_TLS_INSECURE", "1")
	assert.True(t, LoadRedisConfig().tlsConfig().InsecureSkipVerify)

	t.Setenv("REDIS_TLS", "")
	assert.Nil(t, LoadRedisConfig().tlsConfig())
}
