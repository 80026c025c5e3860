package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrUnsupported  ErrorCode = "UNSUPPORTED"

	// Language errors
	ErrSyntax ErrorCode = "SYNTAX"
	ErrEval   ErrorCode = "EVAL"

	// Include errors
	ErrIncludeNotFound ErrorCode = "INCLUDE_NOT_FOUND"
	ErrIncludeCycle    ErrorCode = "INCLUDE_CYCLE"
	ErrIncludeEscape   ErrorCode = "INCLUDE_ESCAPE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Environment store errors
	ErrEnvRead    ErrorCode = "ENV_READ"
	ErrEnvWrite   ErrorCode = "ENV_WRITE"
	ErrEnvTooLong ErrorCode = "ENV_TOO_LONG"

	// Installer errors
	ErrDeploy   ErrorCode = "DEPLOY"
	ErrShortcut ErrorCode = "SHORTCUT"

	// Output errors
	ErrEncode ErrorCode = "ENCODE"
)

// ZovError represents a structured error with code and details
type ZovError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ZovError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZovError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ZovError) Is(target error) bool {
	var targetErr *ZovError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ZovError with the given code and message
func New(code ErrorCode, message string) *ZovError {
	return &ZovError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ZovError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ZovError {
	return &ZovError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ZovError
func Wrap(err error, code ErrorCode, message string) *ZovError {
	if err == nil {
		return nil
	}
	return &ZovError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZovError {
	if err == nil {
		return nil
	}
	return &ZovError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ZovError) WithDetail(key string, value interface{}) *ZovError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var zovErr *ZovError
	if errors.As(err, &zovErr) {
		return zovErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ZovError
func GetErrorCode(err error) ErrorCode {
	var zovErr *ZovError
	if errors.As(err, &zovErr) {
		return zovErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ZovError
func GetErrorDetails(err error) map[string]interface{} {
	var zovErr *ZovError
	if errors.As(err, &zovErr) {
		return zovErr.Details
	}
	return nil
}
