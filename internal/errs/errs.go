// Package errs defines the error values the API hands back to clients.
//
// Every failure a handler can produce is one of three kinds:
//   - a validation error (400), raised before any store access
//   - a not-found error (404), raised when an update/delete touched no row
//   - a store error (500), raised when the database call itself failed
//
// All three are *HTTPError values so the global error handler can render
// them with a single JSON shape.
package errs
