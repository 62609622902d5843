// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated input, services apply the rules (credential hashing, role
// grants, token issuance) and call repositories to touch the store.
package service

import (
	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/repository"
	"github.com/railboard/railboard/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Auth        *AuthService
	Users       *UserService
	TrainRoutes *TrainRouteService
}

// NewServices wires the services with their repositories and the
// process-wide token service. The token service is shared with the
// auth middleware, so it is constructed once by the caller.
func NewServices(s *server.Server, repos *repository.Repositories, tokens *auth.TokenService) (*Services, error) {
	return &Services{
		Auth:        NewAuthService(repos.Users, tokens, s.Config.Auth.AdminSecret),
		Users:       NewUserService(repos.Users),
		TrainRoutes: NewTrainRouteService(repos.TrainRoutes),
	}, nil
}
