package service

import (
	"context"

	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
)

// UserService implements user CRUD on top of the users repository.
// Passwords are hashed here so a plaintext value never reaches the
// repository layer.
type UserService struct {
	users usersRepo
}

func NewUserService(users usersRepo) *UserService {
	return &UserService{users: users}
}

// Create inserts a new user. The role defaults to "user" when absent;
// an unknown role is rejected before any write.
func (s *UserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if !user.Role.Valid() {
		return nil, errs.NewBadRequestError("Role must be one of: user, admin", true, nil, nil, nil)
	}

	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, errs.NewInternalServerError()
	}
	user.Password = hash

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created.Password = ""
	return created, nil
}

// GetByID returns a single user, never including the password hash.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetAll returns every user.
func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.users.GetAll(ctx)
}

// Update applies a partial update and returns the resulting record.
// A supplied password is re-hashed; a supplied role must be valid.
// When no recognized field changes anything, the result is a 404.
func (s *UserService) Update(ctx context.Context, id int64, upd model.UserUpdate) (*model.User, error) {
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, errs.NewBadRequestError("Role must be one of: user, admin", true, nil, nil, nil)
	}

	if upd.Password != nil {
		hash, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return nil, errs.NewInternalServerError()
		}
		upd.Password = &hash
	}

	updated, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.NewNotFoundError("User not found or no changes made", true, nil)
	}

	return s.users.GetByID(ctx, id)
}

// Delete removes a user. There is no cascading delete; train routes
// are unrelated to users.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFoundError("User not found", true, nil)
	}
	return nil
}
