package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/server"
	"github.com/rs/zerolog"
)

// LoggerKey is the key the request-scoped logger is stored under, in
// both the Echo context and the request context.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped logger carrying correlation
// fields (request_id, method, path, ip, and user identity when auth
// has run) and stores it where both handlers and lower layers can
// reach it.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware that attaches the request
// logger to the Echo context and the Go request context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if identity, ok := GetIdentity(c); ok {
				contextLogger = contextLogger.With().
					Str("user_id", strconv.FormatInt(identity.ID, 10)).
					Str("user_role", string(identity.Role)).
					Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger) //nolint:staticcheck // string key shared with echo context
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the Echo context,
// falling back to a no-op logger when the enhancer has not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
