package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "name").
	Field string `json:"field"`

	// Error is the human-readable problem with the field.
	Error string `json:"error"`
}

// HTTPError is the error type every handler returns.
//
// It is serialized directly as the response body:
//
//	{"error": "No deck found with id 7", "code": "NOT_FOUND"}
//	{"error": "Error while creating deck", "details": "ERROR: ... (SQLSTATE 23502)", "code": "STORE_ERROR"}
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message, rendered as "error".
//   - Details: the underlying store message, verbatim, when there is one.
//   - Status: HTTP status code, not serialized.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Details string       `json:"details,omitempty"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"errors,omitempty"`

	// cause is the wrapped driver error for StoreError values.
	cause error
}

// Error makes *HTTPError satisfy the built-in error interface.
// The message is what ends up in logs next to the status.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying store error (if any) to errors.As/Is,
// so callers can still reach the *pgconn.PgError behind a StoreError.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
//
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
