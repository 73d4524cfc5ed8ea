// Package validation binds and validates request payloads.
//
// Payloads declare their rules with go-playground/validator tags; failures
// come back as 400 errors with one entry per offending field.
package validation
