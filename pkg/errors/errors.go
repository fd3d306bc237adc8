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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Bundle errors
	ErrBadMagic     ErrorCode = "BAD_MAGIC"
	ErrTruncated    ErrorCode = "TRUNCATED"
	ErrBadManifest  ErrorCode = "BAD_MANIFEST"
	ErrBadAssetName ErrorCode = "BAD_ASSET_NAME"

	// FileSystem errors
	ErrIO ErrorCode = "IO"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Collaborator errors
	ErrCatalog     ErrorCode = "CATALOG"
	ErrApply       ErrorCode = "APPLY"
	ErrCancelled   ErrorCode = "CANCELLED"
	ErrUnavailable ErrorCode = "UNAVAILABLE"
)

// ReskinError represents a structured error with code and details
type ReskinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReskinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReskinError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReskinError) Is(target error) bool {
	var targetErr *ReskinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReskinError with the given code and message
func New(code ErrorCode, message string) *ReskinError {
	return &ReskinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReskinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReskinError {
	return &ReskinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReskinError
func Wrap(err error, code ErrorCode, message string) *ReskinError {
	if err == nil {
		return nil
	}
	return &ReskinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReskinError {
	if err == nil {
		return nil
	}
	return &ReskinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// IO wraps a filesystem failure, recording the operation and path.
func IO(err error, op, path string) *ReskinError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "%s %s", op, path).
		WithDetail("op", op).
		WithDetail("path", path)
}

// WithDetail adds a detail to the error
func (e *ReskinError) WithDetail(key string, value interface{}) *ReskinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ReskinError) WithDetails(details map[string]interface{}) *ReskinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var reskinErr *ReskinError
	if errors.As(err, &reskinErr) {
		return reskinErr.Code == code
	}
	return false
}

// IsInvalidBundle reports whether err means the input is not a usable bundle.
func IsInvalidBundle(err error) bool {
	switch GetErrorCode(err) {
	case ErrBadMagic, ErrTruncated, ErrBadManifest, ErrBadAssetName:
		return true
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReskinError
func GetErrorCode(err error) ErrorCode {
	var reskinErr *ReskinError
	if errors.As(err, &reskinErr) {
		return reskinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ReskinError
func GetErrorDetails(err error) map[string]interface{} {
	var reskinErr *ReskinError
	if errors.As(err, &reskinErr) {
		return reskinErr.Details
	}
	return nil
}
