package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainRoutesRepo struct {
	routes map[int64]*model.TrainRoute
	nextID int64
}

func newFakeTrainRoutesRepo() *fakeTrainRoutesRepo {
	return &fakeTrainRoutesRepo{routes: map[int64]*model.TrainRoute{}, nextID: 1}
}

func (f *fakeTrainRoutesRepo) Create(_ context.Context, route *model.TrainRoute) (*model.TrainRoute, error) {
	stored := *route
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.nextID++
	f.routes[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (f *fakeTrainRoutesRepo) GetByID(_ context.Context, id int64) (*model.TrainRoute, error) {
	route, ok := f.routes[id]
	if !ok {
		return nil, errs.NewNotFoundError("Train route not found", true, nil)
	}
	result := *route
	return &result, nil
}

func (f *fakeTrainRoutesRepo) GetByTrainID(_ context.Context, trainID string) ([]model.TrainRoute, error) {
	routes := []model.TrainRoute{}
	for _, route := range f.routes {
		if route.TrainID == trainID {
			routes = append(routes, *route)
		}
	}
	return routes, nil
}

func (f *fakeTrainRoutesRepo) GetAll(_ context.Context) ([]model.TrainRoute, error) {
	routes := []model.TrainRoute{}
	for _, route := range f.routes {
		routes = append(routes, *route)
	}
	return routes, nil
}

func (f *fakeTrainRoutesRepo) SearchByStations(_ context.Context, from, to string) ([]model.TrainRoute, error) {
	routes := []model.TrainRoute{}
	for _, route := range f.routes {
		if route.StationFrom == from && route.StationTo == to {
			routes = append(routes, *route)
		}
	}
	return routes, nil
}

func (f *fakeTrainRoutesRepo) Update(_ context.Context, id int64, upd model.TrainRouteUpdate) (bool, error) {
	route, ok := f.routes[id]
	if !ok {
		return false, nil
	}

	changed := false
	if upd.TrainID != nil {
		route.TrainID = *upd.TrainID
		changed = true
	}
	if upd.DepartureTime != nil {
		route.DepartureTime = *upd.DepartureTime
		changed = true
	}
	if upd.ArrivalTime != nil {
		route.ArrivalTime = *upd.ArrivalTime
		changed = true
	}
	if upd.StationFrom != nil {
		route.StationFrom = *upd.StationFrom
		changed = true
	}
	if upd.StationTo != nil {
		route.StationTo = *upd.StationTo
		changed = true
	}

	return changed, nil
}

func (f *fakeTrainRoutesRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.routes[id]; !ok {
		return false, nil
	}
	delete(f.routes, id)
	return true, nil
}

func sampleRoute() *model.TrainRoute {
	return &model.TrainRoute{
		TrainID:       "IR1",
		DepartureTime: "2024-01-01T08:00",
		ArrivalTime:   "2024-01-01T10:00",
		StationFrom:   "A",
		StationTo:     "B",
	}
}

func TestTrainRouteService_CreateAndSearch(t *testing.T) {
	svc := NewTrainRouteService(newFakeTrainRoutesRepo())

	created, err := svc.Create(context.Background(), sampleRoute())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := svc.Search(context.Background(), "A", "B")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	empty, err := svc.Search(context.Background(), "B", "A")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTrainRouteService_GetByTrainID(t *testing.T) {
	svc := NewTrainRouteService(newFakeTrainRoutesRepo())

	_, err := svc.Create(context.Background(), sampleRoute())
	require.NoError(t, err)

	second := sampleRoute()
	second.StationFrom = "B"
	second.StationTo = "C"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	routes, err := svc.GetByTrainID(context.Background(), "IR1")
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

func TestTrainRouteService_Update_EmptyFieldSet(t *testing.T) {
	svc := NewTrainRouteService(newFakeTrainRoutesRepo())

	created, err := svc.Create(context.Background(), sampleRoute())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, model.TrainRouteUpdate{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestTrainRouteService_Delete_Missing(t *testing.T) {
	svc := NewTrainRouteService(newFakeTrainRoutesRepo())

	err := svc.Delete(context.Background(), 99)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
