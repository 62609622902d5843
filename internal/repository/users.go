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

// UsersRepository provides CRUD access to the users table.
type UsersRepository struct {
	db DB
}

func NewUsersRepository(db DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create inserts a new user and returns it with the store-assigned id
// and creation timestamp. Duplicate username or email surfaces as a
// 409 Conflict.
func (r *UsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return user, nil
}

// GetByID returns a user without the password hash.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, email, role, created_at
		FROM users
		WHERE id = $1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", true, nil)
		}
		return nil, sqlerr.HandleError(err)
	}

	return user, nil
}

// GetByUsername returns a user including the password hash. It exists
// for the authentication flow only; nothing else should read the hash.
func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, email, password, role, created_at
		FROM users
		WHERE username = $1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", true, nil)
		}
		return nil, sqlerr.HandleError(err)
	}

	return user, nil
}

// GetAll returns every user, without password hashes.
func (r *UsersRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, username, email, role, created_at
		FROM users
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return users, nil
}

// buildUserUpdate turns the non-nil fields of upd into a SET clause and
// argument list. The four cases below are the complete allow-list of
// mutable user columns; anything else in a request payload never
// reaches SQL.
func buildUserUpdate(upd model.UserUpdate) (string, []any) {
	fields := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		fields = append(fields, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Password != nil {
		add("password", *upd.Password)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}

	return strings.Join(fields, ", "), args
}

// Update applies the non-nil fields of upd to the user row and reports
// whether a row was actually modified. An empty field set issues no
// write and reports no change.
func (r *UsersRepository) Update(ctx context.Context, id int64, upd model.UserUpdate) (bool, error) {
	setClause, args := buildUserUpdate(upd)
	if len(args) == 0 {
		return false, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", setClause, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, sqlerr.HandleError(err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the user row and reports whether it existed. Deleting
// a nonexistent id is not an error.
func (r *UsersRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, sqlerr.HandleError(err)
	}

	return tag.RowsAffected() > 0, nil
}
