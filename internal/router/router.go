package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"earthly-globe/internal/handler"
)

// RegisterRoutes registers the liveness probe.  It stays outside the rate
// limiter so monitoring is never throttled.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterGlobe registers the diagnostic and data endpoints.  limit is
// applied to both; pass nil for no limiting.
func RegisterGlobe(e *echo.Echo, g *handler.GlobeHandler, limit echo.MiddlewareFunc) {
	var mws []echo.MiddlewareFunc
	if limit != nil {
		mws = append(mws, limit)
	}
	e.GET("/", g.Diagnostic, mws...)
	e.GET(handler.DataPath, g.Data, mws...)
}
