package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsersRepo is an in-memory usersRepo for service tests.
type fakeUsersRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return nil, errs.NewConflictError("Username already exists", true, nil)
		}
		if existing.Email == user.Email {
			return nil, errs.NewConflictError("Email already exists", true, nil)
		}
	}

	stored := *user
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.nextID++
	f.users[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}

	result := *user
	result.Password = ""
	return &result, nil
}

func (f *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			result := *user
			return &result, nil
		}
	}
	return nil, errs.NewNotFoundError("User not found", true, nil)
}

func (f *fakeUsersRepo) GetAll(_ context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, user := range f.users {
		copied := *user
		copied.Password = ""
		users = append(users, copied)
	}
	return users, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id int64, upd model.UserUpdate) (bool, error) {
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}

	changed := false
	if upd.Username != nil {
		user.Username = *upd.Username
		changed = true
	}
	if upd.Email != nil {
		user.Email = *upd.Email
		changed = true
	}
	if upd.Password != nil {
		user.Password = *upd.Password
		changed = true
	}
	if upd.Role != nil {
		user.Role = *upd.Role
		changed = true
	}

	return changed, nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func newAuthService(repo *fakeUsersRepo) (*AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, "admin-secret"), tokens
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeUsersRepo()
	svc, tokens := newAuthService(repo)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotZero(t, user.ID)

	// The stored record carries a hash, never the plaintext.
	stored := repo.users[user.ID]
	assert.NotEqual(t, "pw123456", stored.Password)
	assert.True(t, auth.CheckPassword("pw123456", stored.Password))

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, model.RoleUser, identity.Role)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "pw123456",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
}

func TestAuthService_Register_AdminGrant(t *testing.T) {
	tests := []struct {
		name     string
		admin    string
		wantRole model.Role
	}{
		{"exact match grants admin", "admin-secret", model.RoleAdmin},
		{"mismatch grants user", "wrong", model.RoleUser},
		{"absence grants user", "", model.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(newFakeUsersRepo())

			user, _, err := svc.Register(context.Background(), RegisterInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "pw123456",
				Admin:    tt.admin,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	registered, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	repo := newFakeUsersRepo()
	svc, _ := newAuthService(repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "alice", "wrong")
	_, _, unknownUser := svc.Login(context.Background(), "nobody", "pw123456")

	var errA, errB *errs.HTTPError
	require.ErrorAs(t, wrongPassword, &errA)
	require.ErrorAs(t, unknownUser, &errB)

	// Both failures are indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, errA.Status)
	assert.Equal(t, errA.Status, errB.Status)
	assert.Equal(t, errA.Message, errB.Message)
	assert.Equal(t, errA.Code, errB.Code)
}
