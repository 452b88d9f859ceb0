package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers and monitoring.  The
// service keeps all state in memory, so a plain 200 "ok" is the whole
// story; there is no database or broker whose health gates readiness.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
