// Package errors provides the coded error type used across datename.
//
// Every failure that reaches the command layer carries an ErrorCode so
// tests can assert on the category of a failure instead of its message,
// and so the binary can pick an exit status.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Command line and configuration errors
	ErrUsage       ErrorCode = "USAGE"
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Filesystem errors
	ErrDirRead    ErrorCode = "DIR_READ"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrRename     ErrorCode = "RENAME"
)

// DatenameError represents a structured error with code and details
type DatenameError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DatenameError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DatenameError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DatenameError with the same code.
func (e *DatenameError) Is(target error) bool {
	var targetErr *DatenameError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DatenameError with the given code and message
func New(code ErrorCode, message string) *DatenameError {
	return &DatenameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DatenameError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DatenameError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. Callers must not pass a nil err:
// the typed nil it returns is not a nil error interface.
func Wrap(err error, code ErrorCode, message string) *DatenameError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DatenameError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DatenameError) WithDetail(key string, value interface{}) *DatenameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dnErr *DatenameError
	if errors.As(err, &dnErr) {
		return dnErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DatenameError
func GetErrorCode(err error) ErrorCode {
	var dnErr *DatenameError
	if errors.As(err, &dnErr) {
		return dnErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DatenameError
func GetErrorDetails(err error) map[string]interface{} {
	var dnErr *DatenameError
	if errors.As(err, &dnErr) {
		return dnErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status: 0 for nil, 2 for
// command line and configuration mistakes, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrUsage, ErrConfigParse:
		return 2
	default:
		return 1
	}
}
