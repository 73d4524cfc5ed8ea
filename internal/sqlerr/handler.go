package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/deck-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code behind err.
//
// It looks for an *Error first, then for a raw *pgconn.PgError anywhere in
// the chain. Everything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into our *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Describe returns the classified driver error behind err, or nil when err
// did not come from the PostgreSQL server.
func Describe(err error) *Error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}
	return nil
}

// IsNotFound reports whether err means "the statement matched no row".
//
// Repositories use RETURNING + pgx.CollectExactlyOneRow, so a zero row count
// surfaces as pgx.ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// generateErrorCode builds a "<DOMAIN>_<ACTION>" code from a classified error.
//
// Example:
//
//	cartes + ForeignKeyViolation => CARTE_NOT_FOUND
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation:
		action = "INVALID"
	case ConnectionException:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// DomainCode is the "<DOMAIN>_<ACTION>" code for e, e.g. PAQUET_REQUIRED.
func (e *Error) DomainCode() string {
	return generateErrorCode(e.TableName, e.Code)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case ConnectionException:
		return "The database is unreachable"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName picks the noun used in messages.
//
// A "<x>_id" / "id_<x>" column wins (foreign keys), then the table name,
// then "record".
func getEntityName(tableName, columnName string) string {
	lower := strings.ToLower(columnName)
	switch {
	case strings.HasSuffix(lower, "_id"):
		return humanizeText(strings.TrimSuffix(lower, "_id"))
	case strings.HasPrefix(lower, "id_"):
		return humanizeText(strings.TrimPrefix(lower, "id_"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a constraint named
// either "unique_<table>_<column>" or "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if trimmed, ok := strings.CutSuffix(constraintName, "_key"); ok {
		if i := strings.LastIndex(trimmed, "_"); i >= 0 && i < len(trimmed)-1 {
			return trimmed[i+1:]
		}
	}

	return ""
}

// HandleError converts an arbitrary error into an *errs.HTTPError.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - no rows (pgx / database/sql): 404
//   - anything else, driver errors included: StoreError carrying the
//     original message as details
//
// The global error handler uses it for errors no service classified.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if IsNotFound(err) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewStoreError("An error occurred while processing your request", err)
}
