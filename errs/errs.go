package errs

import "fmt"

// Error extends the standard error interface with structured information.
//
// Error provides codes for categorization, classification for retry logic,
// and compatibility with standard library error handling (errors.Is,
// errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() Code

	// Classification returns whether the error is retryable or permanent.
	Classification() Classification

	// Message returns the human-readable error message.
	Message() string

	// Unwrap returns the wrapped error for errors.Is and errors.As
	// compatibility. Returns nil if this error wraps nothing.
	Unwrap() error
}

// structuredError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type structuredError struct {
	code           Code
	classification Classification
	message        string
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if a cause is present.
func (e *structuredError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *structuredError) Code() Code {
	return e.code
}

// Classification returns the error classification.
func (e *structuredError) Classification() Classification {
	return e.classification
}

// Message returns the error message.
func (e *structuredError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *structuredError) Unwrap() error {
	return e.cause
}
