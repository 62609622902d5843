// Package handler is the HTTP entry point after the router.
//
// Handlers parse and validate requests, call the service layer, and
// translate results into responses. Failures are returned as errors
// and formatted by the global error handler.
package handler
