package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents application-specific error codes
type ErrorCode string

const (
	// Validation errors (2xxx)
	ErrCodeValidation    ErrorCode = "E2001"
	ErrCodeInvalidInput  ErrorCode = "E2002"
	ErrCodeMissingField  ErrorCode = "E2003"
	ErrCodeInvalidFormat ErrorCode = "E2004"

	// Resource errors (3xxx)
	ErrCodeNotFound ErrorCode = "E3001"

	// Internal errors (9xxx)
	ErrCodeInternal ErrorCode = "E9001"
	ErrCodeStorage  ErrorCode = "E9002"
)

// AppError represents an application error with context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Cause      error                  `json:"-"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithField adds a field to the error
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: getHTTPStatus(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: getHTTPStatus(code),
		Cause:      err,
	}
}

// ============================================================
// Predefined error constructors
// ============================================================

// ValidationError reports a payload that fails a business-rule check.
func ValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// InvalidInput reports a field carrying an invalid value.
func InvalidInput(field, message string) *AppError {
	return New(ErrCodeInvalidInput, message).WithField("field", field)
}

// MissingField reports a required field that is absent or empty.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("%s must not be empty", field)).WithField("field", field)
}

// InvalidFormat reports a field that fails a format check.
func InvalidFormat(field, message string) *AppError {
	return New(ErrCodeInvalidFormat, message).WithField("field", field)
}

// EventNotFound reports that no event exists for the given identifier.
// The identifier is carried for diagnostic display.
func EventNotFound(eventID string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("Event with id '%s' not found", eventID)).
		WithField("eventId", eventID)
}

// StorageError wraps a failure from the record store. The underlying
// error is kept opaque; callers never interpret store error codes.
func StorageError(err error) *AppError {
	return Wrap(err, ErrCodeStorage, "Record store operation failed")
}

// Internal creates a generic internal error
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// ============================================================
// Helper functions
// ============================================================

func getHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeInvalidFormat:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeNotFound
}

// IsValidation reports whether err is any of the validation AppErrors.
func IsValidation(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeInvalidFormat:
		return true
	}
	return false
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// ToAppError converts any error to AppError
func ToAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, err.Error())
}
