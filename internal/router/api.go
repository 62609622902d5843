package router

import (
	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/handler"
	"github.com/railboard/railboard/internal/middleware"
	"github.com/railboard/railboard/internal/model"
)

// registerAPIRoutes maps the /api surface.
//
// Protection policy: auth endpoints are public, timetable reads are
// public, user administration requires a valid token, and every
// mutation requires the admin role.
func registerAPIRoutes(e *echo.Echo, m *middleware.Middlewares, h *handler.Handlers) {
	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register())
	authGroup.POST("/login", h.Auth.Login())

	adminOnly := m.Auth.RequireRole(model.RoleAdmin)

	users := api.Group("/users", m.Auth.RequireAuth)
	users.GET("", h.Users.List())
	users.GET("/:id", h.Users.Get())
	users.POST("", h.Users.Create(), adminOnly)
	users.PUT("/:id", h.Users.Update(), adminOnly)
	users.DELETE("/:id", h.Users.Delete(), adminOnly)

	routes := api.Group("/train-routes")
	routes.GET("", h.TrainRoutes.List())
	routes.GET("/search", h.TrainRoutes.Search())
	routes.GET("/train/:trainId", h.TrainRoutes.GetByTrain())
	routes.GET("/:id", h.TrainRoutes.Get())
	routes.POST("", h.TrainRoutes.Create(), m.Auth.RequireAuth, adminOnly)
	routes.PUT("/:id", h.TrainRoutes.Update(), m.Auth.RequireAuth, adminOnly)
	routes.DELETE("/:id", h.TrainRoutes.Delete(), m.Auth.RequireAuth, adminOnly)
}
