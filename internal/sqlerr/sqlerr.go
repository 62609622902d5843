// Package sqlerr translates database driver errors.
//
// It parses SQLSTATE codes reported by the PostgreSQL driver and
// converts them into client-facing errors (e.g. a unique violation
// becomes a 409 Conflict with a readable message).
package sqlerr
