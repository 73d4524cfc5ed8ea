package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/deck-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that know how to validate
// themselves, usually by running validator.Struct on their tags.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path parameters and the JSON body into payload,
// then validates it.
//
// Both failures come back as a 400 *errs.HTTPError, before any store access.
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	return validateStruct(payload)
}

// bindError turns an Echo binding failure into a 400.
//
// A non-numeric path id surfaces as a *strconv.NumError behind Echo's
// *echo.HTTPError; malformed JSON as an *echo.HTTPError with a string message.
func bindError(err error) *errs.HTTPError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError(
			fmt.Sprintf("Invalid value '%s': must be an integer", numErr.Num),
			nil,
			[]errs.FieldError{{Field: "id", Error: "must be an integer"}},
		)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, nil, nil)
		}
	}

	return errs.NewBadRequestError("Invalid request body", nil, nil)
}

// validateStruct runs v.Validate. Tag failures carry per-field errors;
// anything else a Validate method returns is passed through as a plain 400.
func validateStruct(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.ValidationError(err)
	}

	msg, fieldErrors := extractValidationError(validationErrors)
	return errs.NewBadRequestError(msg, nil, fieldErrors)
}

// extractValidationError converts validator errors into field errors plus
// a summary message such as "Field 'name' is required."
func extractValidationError(validationErrors validator.ValidationErrors) (string, []errs.FieldError) {
	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: tagMessage(fe),
		})
	}

	return summarize(fieldErrors), fieldErrors
}

// summarize builds the top-level message from the field errors.
func summarize(fieldErrors []errs.FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fmt.Sprintf("Field '%s' %s.", fe.Field, fe.Error))
	}
	return strings.Join(parts, " ")
}

func tagMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "url":
		return "must be a valid URL"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s:%s", err.Tag(), err.Param())
		}
		return err.Tag()
	}
}
