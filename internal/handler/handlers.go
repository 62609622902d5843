package handler

import (
	"github.com/railboard/railboard/internal/server"
	"github.com/railboard/railboard/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Users       *UserHandler
	TrainRoutes *TrainRouteHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Auth:        NewAuthHandler(s, services.Auth),
		Users:       NewUserHandler(s, services.Users),
		TrainRoutes: NewTrainRouteHandler(s, services.TrainRoutes),
	}
}
