package service

import (
	"context"

	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
)

// trainRoutesRepo is the slice of the train routes repository the
// service needs.
type trainRoutesRepo interface {
	Create(ctx context.Context, route *model.TrainRoute) (*model.TrainRoute, error)
	GetByID(ctx context.Context, id int64) (*model.TrainRoute, error)
	GetByTrainID(ctx context.Context, trainID string) ([]model.TrainRoute, error)
	GetAll(ctx context.Context) ([]model.TrainRoute, error)
	SearchByStations(ctx context.Context, from, to string) ([]model.TrainRoute, error)
	Update(ctx context.Context, id int64, upd model.TrainRouteUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TrainRouteService implements timetable CRUD and lookups.
type TrainRouteService struct {
	routes trainRoutesRepo
}

func NewTrainRouteService(routes trainRoutesRepo) *TrainRouteService {
	return &TrainRouteService{routes: routes}
}

// Create inserts a new train route.
func (s *TrainRouteService) Create(ctx context.Context, route *model.TrainRoute) (*model.TrainRoute, error) {
	return s.routes.Create(ctx, route)
}

// GetByID returns a single train route.
func (s *TrainRouteService) GetByID(ctx context.Context, id int64) (*model.TrainRoute, error) {
	return s.routes.GetByID(ctx, id)
}

// GetByTrainID returns all routes served by a train identifier.
func (s *TrainRouteService) GetByTrainID(ctx context.Context, trainID string) ([]model.TrainRoute, error) {
	return s.routes.GetByTrainID(ctx, trainID)
}

// GetAll returns every train route.
func (s *TrainRouteService) GetAll(ctx context.Context) ([]model.TrainRoute, error) {
	return s.routes.GetAll(ctx)
}

// Search returns routes between two stations, matched exactly.
func (s *TrainRouteService) Search(ctx context.Context, from, to string) ([]model.TrainRoute, error) {
	return s.routes.SearchByStations(ctx, from, to)
}

// Update applies a partial update and returns the resulting record.
// When no recognized field changes anything, the result is a 404.
func (s *TrainRouteService) Update(ctx context.Context, id int64, upd model.TrainRouteUpdate) (*model.TrainRoute, error) {
	updated, err := s.routes.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.NewNotFoundError("Train route not found or no changes made", true, nil)
	}

	return s.routes.GetByID(ctx, id)
}

// Delete removes a train route.
func (s *TrainRouteService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.routes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFoundError("Train route not found", true, nil)
	}
	return nil
}
