// Package middleware holds the global and route-specific middleware.
//
// These intercept requests for cross-cutting concerns: request IDs,
// request-scoped logging, CORS, panic recovery, the global error
// handler, and bearer-token authentication with role checks.
package middleware
