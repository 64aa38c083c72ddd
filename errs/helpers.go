package errs

import (
	stderrors "errors"
	"io/fs"
)

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from an error.
// Returns CodeUnknown if the error is nil or carries no structured code,
// except for stdlib filesystem sentinels which translate to their
// corresponding codes (fs.ErrNotExist to CodeNotFound, fs.ErrExist to
// CodeAlreadyExists).
//
// The error chain is searched; the outermost structured error wins.
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	var structured Error
	if stderrors.As(err, &structured) {
		return structured.Code()
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	}

	return CodeUnknown
}

// IsCode reports whether the error's extracted code matches code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound reports whether the error indicates a missing path.
// Both structured CodeNotFound errors and raw fs.ErrNotExist chains match,
// so callers can special-case idempotent cleanup uniformly.
func IsNotFound(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || IsCode(err, CodeNotFound)
}

// IsRetryable reports whether the error may succeed on retry.
// Returns false for nil errors and errors without structured classification.
func IsRetryable(err error) bool {
	var structured Error
	if stderrors.As(err, &structured) {
		return structured.Classification().IsRetryable()
	}
	return false
}
