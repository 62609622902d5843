package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/server"
	"github.com/railboard/railboard/internal/service"
	"github.com/railboard/railboard/internal/validation"
)

// TrainRouteHandler serves the timetable endpoints.
type TrainRouteHandler struct {
	Handler
	routes *service.TrainRouteService
}

func NewTrainRouteHandler(s *server.Server, routes *service.TrainRouteService) *TrainRouteHandler {
	return &TrainRouteHandler{
		Handler: NewHandler(s),
		routes:  routes,
	}
}

// CreateTrainRouteRequest is a full timetable entry. Times are opaque
// strings; no ordering between departure and arrival is enforced.
type CreateTrainRouteRequest struct {
	TrainID       string `json:"train_id" validate:"required,max=32"`
	DepartureTime string `json:"departure_time" validate:"required"`
	ArrivalTime   string `json:"arrival_time" validate:"required"`
	StationFrom   string `json:"station_from" validate:"required,max=128"`
	StationTo     string `json:"station_to" validate:"required,max=128"`
}

func (r *CreateTrainRouteRequest) Validate() error {
	return validation.Struct(r)
}

// TrainRouteIDRequest carries the route id path parameter.
type TrainRouteIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *TrainRouteIDRequest) Validate() error {
	return validation.Struct(r)
}

// TrainIDRequest carries the train identifier path parameter.
type TrainIDRequest struct {
	TrainID string `param:"trainId" validate:"required"`
}

func (r *TrainIDRequest) Validate() error {
	return validation.Struct(r)
}

// SearchTrainRoutesRequest carries the station pair query parameters.
// Stations are matched exactly.
type SearchTrainRoutesRequest struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

func (r *SearchTrainRoutesRequest) Validate() error {
	return validation.Struct(r)
}

// ListTrainRoutesRequest has no inputs.
type ListTrainRoutesRequest struct{}

func (r *ListTrainRoutesRequest) Validate() error {
	return nil
}

// UpdateTrainRouteRequest is a partial update. Nil fields are left
// unchanged.
type UpdateTrainRouteRequest struct {
	ID            int64   `param:"id" validate:"required,gt=0"`
	TrainID       *string `json:"train_id" validate:"omitempty,max=32"`
	DepartureTime *string `json:"departure_time" validate:"omitempty"`
	ArrivalTime   *string `json:"arrival_time" validate:"omitempty"`
	StationFrom   *string `json:"station_from" validate:"omitempty,max=128"`
	StationTo     *string `json:"station_to" validate:"omitempty,max=128"`
}

func (r *UpdateTrainRouteRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/train-routes.
func (h *TrainRouteHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

// Get handles GET /api/train-routes/:id.
func (h *TrainRouteHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

// GetByTrain handles GET /api/train-routes/train/:trainId.
func (h *TrainRouteHandler) GetByTrain() echo.HandlerFunc {
	return Handle(h.Handler, h.getByTrain, http.StatusOK)
}

// List handles GET /api/train-routes.
func (h *TrainRouteHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

// Search handles GET /api/train-routes/search.
func (h *TrainRouteHandler) Search() echo.HandlerFunc {
	return Handle(h.Handler, h.search, http.StatusOK)
}

// Update handles PUT /api/train-routes/:id.
func (h *TrainRouteHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK)
}

// Delete handles DELETE /api/train-routes/:id.
func (h *TrainRouteHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.delete, http.StatusNoContent)
}

func (h *TrainRouteHandler) create(c echo.Context, req *CreateTrainRouteRequest) (*model.TrainRoute, error) {
	return h.routes.Create(c.Request().Context(), &model.TrainRoute{
		TrainID:       req.TrainID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		StationFrom:   req.StationFrom,
		StationTo:     req.StationTo,
	})
}

func (h *TrainRouteHandler) get(c echo.Context, req *TrainRouteIDRequest) (*model.TrainRoute, error) {
	return h.routes.GetByID(c.Request().Context(), req.ID)
}

func (h *TrainRouteHandler) getByTrain(c echo.Context, req *TrainIDRequest) ([]model.TrainRoute, error) {
	routes, err := h.routes.GetByTrainID(c.Request().Context(), req.TrainID)
	if err != nil {
		return nil, err
	}
	return nonNilRoutes(routes), nil
}

func (h *TrainRouteHandler) list(c echo.Context, req *ListTrainRoutesRequest) ([]model.TrainRoute, error) {
	routes, err := h.routes.GetAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return nonNilRoutes(routes), nil
}

func (h *TrainRouteHandler) search(c echo.Context, req *SearchTrainRoutesRequest) ([]model.TrainRoute, error) {
	routes, err := h.routes.Search(c.Request().Context(), req.From, req.To)
	if err != nil {
		return nil, err
	}
	return nonNilRoutes(routes), nil
}

func (h *TrainRouteHandler) update(c echo.Context, req *UpdateTrainRouteRequest) (*model.TrainRoute, error) {
	return h.routes.Update(c.Request().Context(), req.ID, model.TrainRouteUpdate{
		TrainID:       req.TrainID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		StationFrom:   req.StationFrom,
		StationTo:     req.StationTo,
	})
}

func (h *TrainRouteHandler) delete(c echo.Context, req *TrainRouteIDRequest) error {
	return h.routes.Delete(c.Request().Context(), req.ID)
}

// Collections serialize as [] rather than null when empty.
func nonNilRoutes(routes []model.TrainRoute) []model.TrainRoute {
	if routes == nil {
		return []model.TrainRoute{}
	}
	return routes
}
