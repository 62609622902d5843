package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/errs"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/server"
)

const (
	// IdentityKey is the Echo context key the verified identity is
	// stored under.
	IdentityKey = "identity"

	bearerPrefix = "Bearer "
)

// AuthMiddleware enforces bearer-token authentication and role checks.
// Verification is delegated to the token service; nothing is looked up
// server-side, so a token stays valid for its whole lifetime.
type AuthMiddleware struct {
	server *server.Server
	tokens *auth.TokenService
}

// NewAuthMiddleware constructs an AuthMiddleware around the token
// service.
func NewAuthMiddleware(s *server.Server, tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth extracts the bearer credential from the Authorization
// header, verifies it, and attaches the decoded identity to the
// request context.
//
// Missing, invalid, and expired tokens all reject with 401, each with
// a distinguishing message so clients can tell re-login from retry.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return errs.NewUnauthorizedError("Access denied. No token provided.", true)
		}

		identity, err := m.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("token verification failed")

			if errors.Is(err, auth.ErrTokenExpired) {
				return errs.NewUnauthorizedError("Token has expired. Please log in again.", true)
			}
			return errs.NewUnauthorizedError("Invalid token.", true)
		}

		c.Set(IdentityKey, identity)

		GetLogger(c).Debug().
			Int64("user_id", identity.ID).
			Str("user_role", string(identity.Role)).
			Dur("duration", time.Since(start)).
			Msg("user authenticated")

		return next(c)
	}
}

// RequireRole rejects authenticated requests whose role is not in the
// allowed set. It must run after RequireAuth; a request with no
// attached identity is a wiring mistake and rejects with 401.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return errs.NewUnauthorizedError("Authentication required", true)
			}

			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}

			return errs.NewForbiddenError("Insufficient permissions", true)
		}
	}
}

// GetIdentity retrieves the authenticated identity attached by
// RequireAuth.
func GetIdentity(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(auth.Identity)
	return identity, ok
}
