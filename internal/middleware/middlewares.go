package middleware

import (
	"github.com/railboard/railboard/internal/auth"
	"github.com/railboard/railboard/internal/server"
)

// Middlewares groups all middleware components used by the HTTP
// server, built once and reused during router setup.
type Middlewares struct {
	// Global holds the middleware applied to every route: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// Auth provides bearer-token authentication and role enforcement.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs the middleware components from the
// application container and the token service.
func NewMiddlewares(s *server.Server, tokens *auth.TokenService) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, tokens),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
