package repository

import (
	"github.com/railboard/railboard/internal/server"
)

// Repositories is the container for all repository instances, built
// once at startup and handed to the service layer.
type Repositories struct {
	Users       *UsersRepository
	TrainRoutes *TrainRoutesRepository
}

// NewRepositories constructs the repository container on top of the
// shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:       NewUsersRepository(s.DB.Pool),
		TrainRoutes: NewTrainRoutesRepository(s.DB.Pool),
	}
}
