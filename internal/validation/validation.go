// Package validation contains the request validation logic.
//
// Request payloads declare rules via validator struct tags (required
// fields, email formats, role enums) and implement Validatable; the
// resulting failures are extracted into field-level errors the client
// can act on.
package validation
