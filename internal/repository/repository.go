// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and typed CRUD accessors for each
// entity, translating driver errors into domain errors so no layer
// above ever sees a SQLSTATE.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories need. Keeping it
// an interface lets tests substitute the connection.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
