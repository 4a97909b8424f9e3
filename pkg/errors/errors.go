package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found. It is a valid empty result,
	// not a failure.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeBadRequest indicates a rejected input
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	// ErrorTypeConflict indicates a conflict
	ErrorTypeConflict ErrorType = "CONFLICT"
	// ErrorTypeRemoteRead indicates a network or server failure while reading from a collaborator
	ErrorTypeRemoteRead ErrorType = "REMOTE_READ"
	// ErrorTypeRemoteWrite indicates a network or server failure while writing to a collaborator
	ErrorTypeRemoteWrite ErrorType = "REMOTE_WRITE"
	// ErrorTypeStorageUnavailable indicates the local preference store could not be used
	ErrorTypeStorageUnavailable ErrorType = "STORAGE_UNAVAILABLE"
	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error
func New(errorType ErrorType, message string) error {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap wraps an error with an application error
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a not found error
func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

// BadRequest creates a bad request error
func BadRequest(message string) error {
	return New(ErrorTypeBadRequest, message)
}

// Conflict creates a conflict error
func Conflict(message string) error {
	return New(ErrorTypeConflict, message)
}

// RemoteRead wraps a failed read against a remote collaborator
func RemoteRead(message string, err error) error {
	return Wrap(ErrorTypeRemoteRead, message, err)
}

// RemoteWrite wraps a failed write against a remote collaborator
func RemoteWrite(message string, err error) error {
	return Wrap(ErrorTypeRemoteWrite, message, err)
}

// StorageUnavailable wraps a preference store failure
func StorageUnavailable(message string, err error) error {
	return Wrap(ErrorTypeStorageUnavailable, message, err)
}

// Internal creates an internal error
func Internal(message string) error {
	return New(ErrorTypeInternal, message)
}

// TypeOf returns the ErrorType of err, or an empty type when err is not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsBadRequest checks if an error is a bad request error
func IsBadRequest(err error) bool {
	return TypeOf(err) == ErrorTypeBadRequest
}

// IsStorageUnavailable checks if an error came from the preference store
func IsStorageUnavailable(err error) bool {
	return TypeOf(err) == ErrorTypeStorageUnavailable
}

// IsTransient reports whether retrying the triggering operation may succeed.
func IsTransient(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeRemoteRead, ErrorTypeRemoteWrite:
		return true
	}
	return false
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return TypeOf(err) == ErrorTypeInternal
}

// IsDuplicateError checks if an error is a duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "duplicate entry")
}
