package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	m := NewAuthMiddleware(&server.Server{}, tokens)

	token, err := tokens.Issue(auth.Identity{ID: 7, Username: "alice", Role: model.RoleAdmin})
	require.NoError(t, err)

	c := newAuthTestContext("Bearer " + token)
	require.NoError(t, m.RequireAuth(okNext)(c))

	identity, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, model.RoleAdmin, identity.Role)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&server.Server{}, auth.NewTokenService("test-secret", time.Hour))

	for _, header := range []string{"", "Basic abc", "bearer lowercase"} {
		err := m.RequireAuth(okNext)(newAuthTestContext(header))

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, "Access denied. No token provided.", httpErr.Message)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&server.Server{}, auth.NewTokenService("test-secret", time.Hour))

	err := m.RequireAuth(okNext)(newAuthTestContext("Bearer not-a-token"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Invalid token.", httpErr.Message)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenService("test-secret", time.Nanosecond)
	m := NewAuthMiddleware(&server.Server{}, auth.NewTokenService("test-secret", time.Hour))

	token, err := expired.Issue(auth.Identity{ID: 1, Username: "alice", Role: model.RoleUser})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	err = m.RequireAuth(okNext)(newAuthTestContext("Bearer " + token))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Token has expired. Please log in again.", httpErr.Message)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(&server.Server{}, auth.NewTokenService("test-secret", time.Hour))
	adminOnly := m.RequireRole(model.RoleAdmin)

	t.Run("matching role passes", func(t *testing.T) {
		c := newAuthTestContext("")
		c.Set(IdentityKey, auth.Identity{ID: 1, Role: model.RoleAdmin})

		assert.NoError(t, adminOnly(okNext)(c))
	})

	t.Run("insufficient role is forbidden", func(t *testing.T) {
		c := newAuthTestContext("")
		c.Set(IdentityKey, auth.Identity{ID: 1, Role: model.RoleUser})

		err := adminOnly(okNext)(c)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
	})

	t.Run("no identity is unauthorized", func(t *testing.T) {
		err := adminOnly(okNext)(newAuthTestContext(""))

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	})
}
