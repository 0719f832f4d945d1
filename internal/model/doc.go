// Package model defines domain entities and data structures for the member registry.
//
// The model package contains the Member entity, request types with their
// normalization rules, and error definitions. Models are used across all
// layers of the application.
//
// # Normalization
//
// Every field of a member has a canonical stored form produced by the
// Normalize functions:
//
//   - NormalizeName: trimmed, 2-100 characters, letters/spaces/hyphens/apostrophes/dots
//   - NormalizeEmail: trimmed and lowercased, standard local@domain grammar
//   - NormalizePhone: trimmed, optional, 8-15 digits with common formatting characters
//
// Request types aggregate per-field failures so one response names every
// invalid field:
//
//	normalized, fieldErrs := req.Normalize()
//	if len(fieldErrs) > 0 { ... }
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MinNameLength  = 2
//	    MaxNameLength  = 100
//	    MaxEmailLength = 254
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
