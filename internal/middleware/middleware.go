// Package middleware holds the Echo middleware stack and the global error
// handler.
//
// Order matters: request id first, then New Relic, then the context
// enhancer that builds the request-scoped logger every later layer uses.
package middleware
