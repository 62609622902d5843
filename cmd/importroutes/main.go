// Command importroutes replaces the train_routes table with the
// contents of a CSV timetable export.
//
// The CSV must carry a header row with the columns train_id,
// departure_time, arrival_time, station_from and station_to, in any
// order. The import runs as a single-writer batch: all existing routes
// are deleted and the file's rows inserted inside one transaction. A
// delete failure rolls everything back and aborts; a failed row insert
// is logged and skipped so one bad line does not lose the batch.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jackc/pgx/v5"
	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/internal/database"
	"github.com/railboard/railboard/internal/logger"
	"github.com/railboard/railboard/internal/model"
	"github.com/rs/zerolog"
)

var routeColumns = []string{"train_id", "departure_time", "arrival_time", "station_from", "station_to"}

func main() {
	csvPath := flag.String("csv", "train_routes.csv", "path to the timetable CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg)

	if err := run(context.Background(), &log, cfg, *csvPath); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

func run(ctx context.Context, log *zerolog.Logger, cfg *config.Config, csvPath string) error {
	routes, err := readRoutes(csvPath)
	if err != nil {
		return err
	}

	log.Info().Int("routes", len(routes)).Str("file", csvPath).Msg("loaded timetable file")

	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM train_routes`)
	if err != nil {
		return fmt.Errorf("deleting existing routes: %w", err)
	}
	log.Info().Int64("deleted", tag.RowsAffected()).Msg("cleared existing routes")

	// Fresh imports restart ids at 1. Run under a savepoint so a
	// failure here does not poison the surrounding transaction.
	if err := execInSavepoint(ctx, tx, `ALTER SEQUENCE train_routes_id_seq RESTART WITH 1`); err != nil {
		log.Warn().Err(err).Msg("could not reset route id sequence")
	}

	inserted := 0
	for i, route := range routes {
		err := execInSavepoint(ctx, tx,
			`INSERT INTO train_routes (train_id, departure_time, arrival_time, station_from, station_to)
			 VALUES ($1, $2, $3, $4, $5)`,
			route.TrainID, route.DepartureTime, route.ArrivalTime, route.StationFrom, route.StationTo,
		)
		if err != nil {
			log.Error().
				Err(err).
				Int("line", i+2).
				Str("train_id", route.TrainID).
				Msg("skipping row")
			continue
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing import transaction: %w", err)
	}

	log.Info().
		Int("inserted", inserted).
		Int("skipped", len(routes)-inserted).
		Msg("import complete")

	return nil
}

// execInSavepoint runs one statement inside a nested transaction, so
// its failure can be discarded without aborting the outer transaction.
func execInSavepoint(ctx context.Context, tx pgx.Tx, sql string, args ...any) error {
	nested, err := tx.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := nested.Exec(ctx, sql, args...); err != nil {
		_ = nested.Rollback(ctx)
		return err
	}

	return nested.Commit(ctx)
}

// readRoutes parses the CSV file, resolving columns by header name.
func readRoutes(path string) ([]model.TrainRoute, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening timetable file: %w", err)
	}
	defer f.Close()

	return parseRoutes(f)
}

func parseRoutes(r io.Reader) ([]model.TrainRoute, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range routeColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header missing column %q", col)
		}
	}

	var routes []model.TrainRoute
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		routes = append(routes, model.TrainRoute{
			TrainID:       record[index["train_id"]],
			DepartureTime: record[index["departure_time"]],
			ArrivalTime:   record[index["arrival_time"]],
			StationFrom:   record[index["station_from"]],
			StationTo:     record[index["station_to"]],
		})
	}

	return routes, nil
}
