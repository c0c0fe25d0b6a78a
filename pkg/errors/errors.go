package errors

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Compression errors
	ErrEmptyInput         ErrorCode = "EMPTY_INPUT"
	ErrMixedSeparators    ErrorCode = "MIXED_SEPARATORS"
	ErrInvalidBraceInput  ErrorCode = "INVALID_BRACE_INPUT"
	ErrDepthLimitExceeded ErrorCode = "DEPTH_LIMIT_EXCEEDED"
)

// Detail keys used by the compression errors
const (
	DetailFound    = "found"
	DetailExpected = "expected"
	DetailPath     = "path"
	DetailReason   = "reason"
	DetailLimit    = "limit"
)

// BraceError represents a structured error with code and details
type BraceError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BraceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *BraceError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BraceError) Is(target error) bool {
	var targetErr *BraceError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Clone returns a copy that shares nothing mutable with e.
func (e *BraceError) Clone() *BraceError {
	if e == nil {
		return nil
	}
	c := *e
	c.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		if s, ok := v.([]string); ok {
			v = append([]string(nil), s...)
		}
		c.Details[k] = v
	}
	return &c
}

// Equal reports whether e and other carry the same code, message, details
// and wrapped error. A nil and an empty Details map compare equal.
func (e *BraceError) Equal(other *BraceError) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Code != other.Code || e.Message != other.Message {
		return false
	}
	if len(e.Details) != len(other.Details) {
		return false
	}
	for k, v := range e.Details {
		ov, ok := other.Details[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return reflect.DeepEqual(e.Wrapped, other.Wrapped)
}

// New creates a new BraceError with the given code and message
func New(code ErrorCode, message string) *BraceError {
	return &BraceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BraceError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BraceError {
	return &BraceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BraceError
func Wrap(err error, code ErrorCode, message string) *BraceError {
	if err == nil {
		return nil
	}
	return &BraceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BraceError {
	if err == nil {
		return nil
	}
	return &BraceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BraceError) WithDetail(key string, value interface{}) *BraceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// EmptyInput reports that no paths were given.
func EmptyInput() *BraceError {
	return New(ErrEmptyInput, "No paths provided")
}

// MixedSeparators reports foreign separator characters. found is sorted so
// two errors built from the same input compare equal.
func MixedSeparators(found []string, expected string) *BraceError {
	sorted := append([]string(nil), found...)
	sort.Strings(sorted)
	return Newf(ErrMixedSeparators, "Mixed path separators found: %v, expected: %s", sorted, expected).
		WithDetail(DetailFound, sorted).
		WithDetail(DetailExpected, expected)
}

// InvalidBraceInput reports a path carrying brace syntax that cannot be used.
func InvalidBraceInput(path, reason string) *BraceError {
	return Newf(ErrInvalidBraceInput, "Invalid brace input '%s': %s", path, reason).
		WithDetail(DetailPath, path).
		WithDetail(DetailReason, reason)
}

// DepthLimitExceeded reports a hard nesting violation.
func DepthLimitExceeded(limit int) *BraceError {
	return Newf(ErrDepthLimitExceeded, "Brace depth limit of %d exceeded", limit).
		WithDetail(DetailLimit, limit)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var braceErr *BraceError
	if errors.As(err, &braceErr) {
		return braceErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BraceError
func GetErrorCode(err error) ErrorCode {
	var braceErr *BraceError
	if errors.As(err, &braceErr) {
		return braceErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BraceError
func GetErrorDetails(err error) map[string]interface{} {
	var braceErr *BraceError
	if errors.As(err, &braceErr) {
		return braceErr.Details
	}
	return nil
}
