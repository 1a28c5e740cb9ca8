package lotto649

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies a class of generator failure
type ErrorCode string

const (
	// System-level errors (1000-1999)
	ErrCodeSystem             ErrorCode = "LOTTO_1000"
	ErrCodeEntropyUnavailable ErrorCode = "LOTTO_1001"
	ErrCodeConfigInvalid      ErrorCode = "LOTTO_1002"
	ErrCodeCircuitBreakerOpen ErrorCode = "LOTTO_1003"

	// Business-level errors (2000-2999)
	ErrCodeInvalidParameters ErrorCode = "LOTTO_2000"
	ErrCodeInvalidRule       ErrorCode = "LOTTO_2001"
	ErrCodeInvalidCount      ErrorCode = "LOTTO_2002"
	ErrCodeExhausted         ErrorCode = "LOTTO_2003"
	ErrCodeInterrupted       ErrorCode = "LOTTO_2004"
)

// ErrorSeverity classifies how bad a DrawError is
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
)

// DrawError is the structured error type produced by the generator
type DrawError struct {
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   string        `json:"details,omitempty"`
	Severity  ErrorSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
	Operation string        `json:"operation,omitempty"`
	Cause     error         `json:"-"`
	Retryable bool          `json:"retryable"`
}

// Error implements the error interface
func (e *DrawError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DrawError) Unwrap() error { return e.Cause }

// Is matches two DrawErrors by code
func (e *DrawError) Is(target error) bool {
	if t, ok := target.(*DrawError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause attaches the underlying error
func (e *DrawError) WithCause(cause error) *DrawError {
	e.Cause = cause
	return e
}

// WithDetails attaches human-readable details
func (e *DrawError) WithDetails(details string) *DrawError {
	e.Details = details
	return e
}

// WithOperation records which operation produced the error
func (e *DrawError) WithOperation(operation string) *DrawError {
	e.Operation = operation
	return e
}

// NewError creates a new non-retryable DrawError
func NewError(code ErrorCode, message string) *DrawError {
	return &DrawError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
		Retryable: false,
	}
}

// NewRetryableError creates a DrawError the caller may retry
func NewRetryableError(code ErrorCode, message string) *DrawError {
	return &DrawError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
		Retryable: true,
	}
}

// NewCriticalError creates a DrawError with critical severity
func NewCriticalError(code ErrorCode, message string) *DrawError {
	return &DrawError{
		Code:      code,
		Message:   message,
		Severity:  SeverityCritical,
		Timestamp: time.Now(),
		Retryable: false,
	}
}

// IsRetryable reports whether err (or any error it wraps) is a retryable DrawError
func IsRetryable(err error) bool {
	var de *DrawError
	if errors.As(err, &de) {
		return de.Retryable
	}
	return false
}

// CodeOf extracts the DrawError code from err, or ErrCodeSystem if err is not
// a DrawError
func CodeOf(err error) ErrorCode {
	var de *DrawError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeSystem
}
