package handler // package handler contains the HTTP handlers of the globe API

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness probe for load balancers.  It answers a plain "ok"
// and does not touch the data directory.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
