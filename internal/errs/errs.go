// Package errs defines the error types shared across the API.
//
// Every failure that reaches a client is expressed as an HTTPError:
// a closed struct carrying a machine code, a human message, and the
// HTTP status it maps to. Handlers and services return these directly;
// the global error handler serializes them as-is.
package errs
