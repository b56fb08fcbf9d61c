package config // package config loads application configuration from environment variables

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// DefaultDataDir is the directory, relative to the working directory, that
// holds the indicator CSV files.
const DefaultDataDir = "globe-eco/data"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default so the server starts
// with an empty environment.
type Config struct {
	Env         string   // application environment (e.g. "dev", "prod")
	Port        string   // HTTP port to listen on
	DataDir     string   // directory containing the indicator CSV files
	LogLevel    string   // debug, info, warn, error
	LogFormat   string   // text (tint) or json
	CORSOrigins []string // allowed origins for cross-origin requests
}

// Load reads an optional .env file and then the process environment.  A
// missing .env file is not an error; variables already set in the
// environment take precedence over the file.
func Load() Config {
	_ = godotenv.Load() // best effort, the file is optional

	return Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "5000"),
		DataDir:     envStr("DATA_DIR", DefaultDataDir),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		LogFormat:   envStr("LOG_FORMAT", "text"),
		CORSOrigins: splitList(envStr("CORS_ORIGINS", "*")),
	}
}

// Addr returns the listen address in the format ":port".
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewLogger creates a slog.Logger based on the configuration.  Text output
// goes through tint for colored, human friendly lines.
func (c Config) NewLogger() *slog.Logger {
	level := parseLevel(c.LogLevel)

	var handler slog.Handler
	switch strings.ToLower(c.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05.000",
			NoColor:    c.Env == "prod",
		})
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
