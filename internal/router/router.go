// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware chain and maps the API route groups to
// their handlers, applying the protection policy per group.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/handler"
	"github.com/railboard/railboard/internal/middleware"
)

// New builds the Echo instance with the full middleware chain, the
// global error handler, and every route registered.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Request id first so the context logger can pick it up.
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, m, h)

	return e
}
