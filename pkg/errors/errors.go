// Package errors provides typed errors for issue-insights
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrParse indicates malformed input such as an invalid timestamp
	ErrParse
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrIO indicates a failure reading or writing a file or stream
	ErrIO
)

// InsightsError is the base error type for all issue-insights errors
type InsightsError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *InsightsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *InsightsError) Unwrap() error {
	return e.Cause
}

// New creates a new InsightsError
func New(errType ErrorType, message string, cause error) *InsightsError {
	return &InsightsError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *InsightsError) WithContext(key string, value interface{}) *InsightsError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var insightsErr *InsightsError
	if err == nil {
		return false
	}
	if errors.As(err, &insightsErr) {
		return insightsErr.Type == errType
	}
	return false
}

// ExitCode maps an error to a process exit code for the CLI.
func ExitCode(err error) int {
	var insightsErr *InsightsError
	if err == nil {
		return 0
	}
	if !errors.As(err, &insightsErr) {
		return 1
	}

	switch insightsErr.Type {
	case ErrConfig, ErrValidation:
		// User needs to fix flags or config
		return 2
	case ErrParse:
		return 3
	default:
		return 1
	}
}

func (et ErrorType) String() string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrParse:
		return "PARSE"
	case ErrValidation:
		return "VALIDATION"
	case ErrIO:
		return "IO"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *InsightsError {
	return New(ErrConfig, message, cause)
}

// ParseError creates a parse error
func ParseError(message string, cause error) *InsightsError {
	return New(ErrParse, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *InsightsError {
	return New(ErrValidation, message, cause)
}

// IOError creates an I/O error
func IOError(message string, cause error) *InsightsError {
	return New(ErrIO, message, cause)
}
