// Package errs provides structured error handling for shellfish.
// It extends Go's standard error handling with error codes for the filesystem
// and process domains, retry classification, and cause-chain preservation so
// an uncaught failure always reports its originating error.
package errs

// Code represents a specific error condition.
// Codes are string-based for debuggability and natural log output.
type Code string

const (
	// Filesystem errors.

	// CodeNotFound indicates a target path does not exist where existence
	// was required. Idempotent helpers (DeleteIfExists) absorb this code
	// internally and report a boolean instead.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates a path already exists and cannot be
	// created or overwritten without an explicit overwrite option.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeConflict indicates a filesystem state conflict, such as creating
	// a file whose parent directory does not exist.
	CodeConflict Code = "CONFLICT"

	// CodeUnsupported indicates the backend does not support the requested
	// operation (e.g., permission changes on an in-memory filesystem).
	CodeUnsupported Code = "UNSUPPORTED"

	// Codec errors.

	// CodeDecodeFailed indicates a codec could not interpret bytes as the
	// target type. Never silently defaulted.
	CodeDecodeFailed Code = "DECODE_FAILED"

	// CodeEncodeFailed indicates a value could not be encoded to bytes.
	CodeEncodeFailed Code = "ENCODE_FAILED"

	// Process errors.

	// CodeSpawnFailed indicates a process could not be started
	// (executable not found or not executable).
	CodeSpawnFailed Code = "SPAWN_FAILED"

	// CodeExecutionFailed indicates a process ran but reported failure
	// (non-zero exit where success was required).
	CodeExecutionFailed Code = "EXECUTION_FAILED"

	// Resource errors.

	// CodeReleaseFailed indicates a scoped resource failed to release.
	// Release failures are surfaced even after a successful use.
	CodeReleaseFailed Code = "RELEASE_FAILED"

	// System errors.

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout Code = "TIMEOUT"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInternal indicates an internal error occurred.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown Code = "UNKNOWN"
)
