// Package sqlerr classifies errors coming back from the PostgreSQL driver.
//
// It turns raw SQLSTATE codes into a small enum the rest of the service can
// switch on, tells "zero rows" apart from real failures, and folds anything
// unexpected into a StoreError.
package sqlerr
