package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/sqlerr"
)

// TrainRoutesRepository provides CRUD access to the train_routes table.
type TrainRoutesRepository struct {
	db DB
}

func NewTrainRoutesRepository(db DB) *TrainRoutesRepository {
	return &TrainRoutesRepository{db: db}
}

const trainRouteColumns = "id, train_id, departure_time, arrival_time, station_from, station_to, created_at"

func scanTrainRoute(row pgx.Row, route *model.TrainRoute) error {
	return row.Scan(
		&route.ID, &route.TrainID, &route.DepartureTime, &route.ArrivalTime,
		&route.StationFrom, &route.StationTo, &route.CreatedAt,
	)
}

// Create inserts a new train route and returns it with the assigned id
// and creation timestamp.
func (r *TrainRoutesRepository) Create(ctx context.Context, route *model.TrainRoute) (*model.TrainRoute, error) {
	query := `
		INSERT INTO train_routes (train_id, departure_time, arrival_time, station_from, station_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		route.TrainID, route.DepartureTime, route.ArrivalTime, route.StationFrom, route.StationTo,
	).Scan(&route.ID, &route.CreatedAt)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return route, nil
}

// GetByID returns a single train route.
func (r *TrainRoutesRepository) GetByID(ctx context.Context, id int64) (*model.TrainRoute, error) {
	query := fmt.Sprintf(`SELECT %s FROM train_routes WHERE id = $1`, trainRouteColumns)

	route := &model.TrainRoute{}
	if err := scanTrainRoute(r.db.QueryRow(ctx, query, id), route); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Train route not found", true, nil)
		}
		return nil, sqlerr.HandleError(err)
	}

	return route, nil
}

// GetByTrainID returns all routes served by the given train
// identifier. Train identifiers are not unique; the result may hold
// several routes.
func (r *TrainRoutesRepository) GetByTrainID(ctx context.Context, trainID string) ([]model.TrainRoute, error) {
	query := fmt.Sprintf(`SELECT %s FROM train_routes WHERE train_id = $1 ORDER BY id`, trainRouteColumns)
	return r.queryRoutes(ctx, query, trainID)
}

// GetAll returns every train route.
func (r *TrainRoutesRepository) GetAll(ctx context.Context) ([]model.TrainRoute, error) {
	query := fmt.Sprintf(`SELECT %s FROM train_routes ORDER BY id`, trainRouteColumns)
	return r.queryRoutes(ctx, query)
}

// SearchByStations returns the routes running from one station to
// another, matched exactly.
func (r *TrainRoutesRepository) SearchByStations(ctx context.Context, from, to string) ([]model.TrainRoute, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM train_routes WHERE station_from = $1 AND station_to = $2 ORDER BY id`,
		trainRouteColumns,
	)
	return r.queryRoutes(ctx, query, from, to)
}

func (r *TrainRoutesRepository) queryRoutes(ctx context.Context, query string, args ...any) ([]model.TrainRoute, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	routes := []model.TrainRoute{}
	for rows.Next() {
		var route model.TrainRoute
		if err := scanTrainRoute(rows, &route); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return routes, nil
}

// buildTrainRouteUpdate turns the non-nil fields of upd into a SET
// clause and argument list. These five columns are the complete
// allow-list of mutable route fields.
func buildTrainRouteUpdate(upd model.TrainRouteUpdate) (string, []any) {
	fields := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		fields = append(fields, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.TrainID != nil {
		add("train_id", *upd.TrainID)
	}
	if upd.DepartureTime != nil {
		add("departure_time", *upd.DepartureTime)
	}
	if upd.ArrivalTime != nil {
		add("arrival_time", *upd.ArrivalTime)
	}
	if upd.StationFrom != nil {
		add("station_from", *upd.StationFrom)
	}
	if upd.StationTo != nil {
		add("station_to", *upd.StationTo)
	}

	return strings.Join(fields, ", "), args
}

// Update applies the non-nil fields of upd to the route row and reports
// whether a row was actually modified. An empty field set issues no
// write and reports no change.
func (r *TrainRoutesRepository) Update(ctx context.Context, id int64, upd model.TrainRouteUpdate) (bool, error) {
	setClause, args := buildTrainRouteUpdate(upd)
	if len(args) == 0 {
		return false, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE train_routes SET %s WHERE id = $%d", setClause, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, sqlerr.HandleError(err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the route row and reports whether it existed.
func (r *TrainRoutesRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM train_routes WHERE id = $1`, id)
	if err != nil {
		return false, sqlerr.HandleError(err)
	}

	return tag.RowsAffected() > 0, nil
}
