// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads, issues exactly one repository call per operation and turns the
// outcome into either a record or one of the errs kinds (not found, store
// error).
package service
