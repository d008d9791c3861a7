package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound         = NewAppError("NOT_FOUND", "resource not found", http.StatusNotFound)
	ErrBadRequest       = NewAppError("BAD_REQUEST", "invalid request", http.StatusBadRequest)
	ErrInternalServer   = NewAppError("INTERNAL_SERVER_ERROR", "internal server error", http.StatusInternalServerError)
	ErrValidation       = NewAppError("VALIDATION_ERROR", "validation failed", http.StatusBadRequest)
	ErrDatabase         = NewAppError("DATABASE_ERROR", "database operation failed", http.StatusInternalServerError)
	ErrUserNotFound     = NewAppError("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	ErrCategoryNotFound = NewAppError("CATEGORY_NOT_FOUND", "category not found", http.StatusNotFound)
	ErrNoPlansForMonth  = NewAppError("NO_PLANS_FOR_MONTH", "no plans found for the requested month", http.StatusNotFound)
	ErrNoPlansForYear   = NewAppError("NO_PLANS_FOR_YEAR", "no plans found for the requested year", http.StatusNotFound)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes sentinel comparison with errors.Is work on wrapped clones:
// two AppErrors match when their codes match.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func (e *AppError) clone() *AppError {
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	return &clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "database operation failed", http.StatusInternalServerError)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ParseValidationErrors(err)
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "request canceled by the client", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "unknown error", http.StatusInternalServerError)
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   strings.ToLower(fieldErr.Field()),
			"message": describeValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "field validation failed",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func describeValidationError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	default:
		return fmt.Sprintf("validation '%s' failed for %s", fe.Tag(), field)
	}
}
