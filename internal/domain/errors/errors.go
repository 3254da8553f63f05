package errors

import (
	"fmt"
	"net/http"
)

// AppError defines the interface for application-specific errors. The HTTP
// delivery layer is the only place that translates these to status codes.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid bearer token",
		"",
	)
)

// NewValidationError creates a 400 error carrying a concrete validation message.
func NewValidationError(message string) AppError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// NewSpatiNotFound creates a 404 error naming the missing spati id.
func NewSpatiNotFound(id string) AppError {
	return NewBaseError(http.StatusNotFound, "SPATI_NOT_FOUND",
		fmt.Sprintf("Späti %q not found", id), "")
}

// NewAmenityNotFound creates a 404 error naming the missing amenity id.
func NewAmenityNotFound(id string) AppError {
	return NewBaseError(http.StatusNotFound, "AMENITY_NOT_FOUND",
		fmt.Sprintf("Amenity %q not found", id), "")
}

// NewMoodNotFound creates a 404 error naming the missing mood id.
func NewMoodNotFound(id string) AppError {
	return NewBaseError(http.StatusNotFound, "MOOD_NOT_FOUND",
		fmt.Sprintf("Mood %q not found", id), "")
}
