package errs

import (
	"errors"
	"fmt"
)

// New creates a new Error with the given code and message.
// The classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errs.New(errs.CodeNotFound, "path does not exist")
func New(code Code, message string) Error {
	return &structuredError{
		code:           code,
		classification: defaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errs.Newf(errs.CodeAlreadyExists, "destination %s is occupied", dst)
func Newf(code Code, format string, args ...any) Error {
	return &structuredError{
		code:           code,
		classification: defaultClassification(code),
		message:        fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// If the wrapped error is already an Error, its classification is preserved.
// Otherwise, the default classification for the code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := backend.Remove(path); err != nil {
//	    return errs.Wrap(err, errs.CodeReleaseFailed, "failed to delete temp file")
//	}
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}

	classification := defaultClassification(code)
	var structured Error
	if errors.As(err, &structured) {
		classification = structured.Classification()
	}

	return &structuredError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code Code, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
