package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"earthly-globe/internal/config"
	"earthly-globe/internal/dataset"
	"earthly-globe/internal/globe"
	"earthly-globe/internal/handler"
	"earthly-globe/internal/middleware"
	"earthly-globe/internal/queue"
	"earthly-globe/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(requestLogger(logger))

	rdb := config.NewRedisClient(config.LoadRedisConfig(), logger) // nil when Redis is down
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger)

	builder := globe.NewBuilder(cfg.DataDir, dataset.NewLoader(logger))
	publisher := queue.NewPublisher(config.LoadEventsConfig(), logger)

	router.RegisterRoutes(e)
	router.RegisterGlobe(e, handler.NewGlobeHandler(builder, publisher, logger), limit)

	logger.Info("starting", "env", cfg.Env, "data_dir", cfg.DataDir)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := serve(ctx, e, cfg.Addr(), logger)
	stop()
	if rdb != nil {
		_ = rdb.Close()
	}
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// serve runs e on addr until ctx is done or the listener fails, then shuts
// the server down.  It returns the listener error, or the shutdown error
// when the server does not stop cleanly.
func serve(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("shutdown: %w", err)
	}
	return runErr
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Error("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
