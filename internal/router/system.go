package router

import (
	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business
// logic, like the health check used by load balancers and monitors.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)
}
