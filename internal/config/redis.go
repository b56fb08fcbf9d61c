package config

// Redis backs the distributed rate limiter.  When the server cannot be
// reached at startup NewRedisClient returns nil and the limiter degrades to
// a pass-through.

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes how to reach the Redis server.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	// TLSInsecure skips certificate verification; only for self-signed
	// development servers.
	TLSInsecure bool
}

// LoadRedisConfig reads the connection parameters:
//
//	REDIS_HOST and REDIS_PORT – hostname and port (take precedence over REDIS_ADDR)
//	REDIS_ADDR – host:port shorthand
//	REDIS_PASSWORD – optional password
//	REDIS_DB – database number (default 0)
//	REDIS_TLS – enable TLS when "true" or "1"
//	REDIS_TLS_INSECURE – skip certificate verification (default false)
func LoadRedisConfig() RedisConfig {
	addr := envStr("REDIS_ADDR", "localhost:6379")
	host, port := envStr("REDIS_HOST", ""), envStr("REDIS_PORT", "")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	return RedisConfig{
		Addr:        addr,
		Password:    envStr("REDIS_PASSWORD", ""),
		DB:          envInt("REDIS_DB", 0),
		TLS:         envBool("REDIS_TLS", false),
		TLSInsecure: envBool("REDIS_TLS_INSECURE", false),
	}
}

// tlsConfig returns nil when TLS is off.  Certificates are verified unless
// TLSInsecure is set.
func (c RedisConfig) tlsConfig() *tls.Config {
	if !c.TLS {
		return nil
	}
	return &tls.Config{InsecureSkipVerify: c.TLSInsecure}
}

// NewRedisClient connects and pings with a short timeout.  It returns nil
// if the server is unreachable.
func NewRedisClient(cfg RedisConfig, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: cfg.tlsConfig(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}
