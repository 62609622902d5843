package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
)

// usersRepo is the slice of the users repository the services need.
type usersRepo interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, upd model.UserUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AuthService implements registration and login by composing the
// credential service, the token service, and the users repository.
type AuthService struct {
	users       usersRepo
	tokens      *auth.TokenService
	adminSecret string
}

func NewAuthService(users usersRepo, tokens *auth.TokenService, adminSecret string) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		adminSecret: adminSecret,
	}
}

// RegisterInput is the validated registration payload. Admin is the
// optional caller-supplied admin grant value; it is compared against
// the server-side admin secret, never stored.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Admin    string
}

// Register creates a new account and issues its first session token.
//
// The admin role is granted only when the supplied admin value exactly
// matches the configured admin secret; any mismatch or absence yields
// a regular user. A taken username or email is a 409 Conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	role := model.RoleUser
	if input.Admin != "" && input.Admin == s.adminSecret {
		role = model.RoleAdmin
	}

	existing, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
			return nil, "", err
		}
	}
	if existing != nil {
		return nil, "", errs.NewConflictError("Username already exists", true, nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", errs.NewInternalServerError()
	}

	user, err := s.users.Create(ctx, &model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and issues a session token.
//
// An unknown username and a wrong password produce the exact same
// error, so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	invalidCredentials := errs.NewUnauthorizedError("Invalid credentials", true)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil, "", invalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", invalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	// The hash never leaves the authentication flow.
	user.Password = ""

	return user, token, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	token, err := s.tokens.Issue(auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return "", errs.NewInternalServerError()
	}
	return token, nil
}
