package errors

import (
	"net/http"

	"timeclock/internal/errors"
)

// AppError defines the interface for application-specific errors
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Device connectivity errors
	ErrConnectionFailed = NewBaseError(
		http.StatusBadGateway,
		"DEVICE_CONNECTION_FAILED",
		"Failed to establish connection with the device",
		"",
	)

	ErrAuthenticationFailed = NewBaseError(
		http.StatusBadGateway,
		"DEVICE_AUTH_FAILED",
		"The device rejected the configured password",
		"",
	)

	// Identity errors
	ErrDuplicateIdentifier = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_DEVICE_IDENTIFIER",
		"More than one device user maps to the same device-side id",
		"",
	)

	ErrDeviceUserNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_USER_NOT_FOUND",
		"No device user matches the given identifier",
		"",
	)

	// Punch normalization errors
	ErrTimeConversion = NewBaseError(
		http.StatusUnprocessableEntity,
		"TIME_CONVERSION_FAILED",
		"The punch timestamp cannot be converted to UTC",
		"",
	)

	// Attendance invariant errors
	ErrInvariantViolation = NewBaseError(
		http.StatusBadRequest,
		"CHECKOUT_BEFORE_CHECKIN",
		"Check-out time cannot be earlier than check-in time",
		"",
	)

	// Deletion guard errors
	ErrDeletionGuard = NewBaseError(
		http.StatusConflict,
		"PUNCH_LOG_CALCULATED",
		"Punch logs already consumed by attendance computation cannot be deleted",
		"",
	)

	// Command queue errors
	ErrCommandNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMAND_NOT_FOUND",
		"No device command matches the given identifier",
		"",
	)

	ErrCommandNotExecuted = NewBaseError(
		http.StatusConflict,
		"COMMAND_NOT_EXECUTED",
		"Only executed commands can be acknowledged",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"A system error occurred, please contact the administrator",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"The request conflicts with existing data",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
