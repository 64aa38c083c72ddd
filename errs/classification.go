package errs

// Classification indicates whether an error should trigger a retry.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed
	// on retry, such as timeouts.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry, such as missing paths or malformed data.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[Code]Classification{
	CodeTimeout: ClassificationRetryable,

	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeConflict:        ClassificationPermanent,
	CodeUnsupported:     ClassificationPermanent,
	CodeDecodeFailed:    ClassificationPermanent,
	CodeEncodeFailed:    ClassificationPermanent,
	CodeSpawnFailed:     ClassificationPermanent,
	CodeExecutionFailed: ClassificationPermanent,
	CodeReleaseFailed:   ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// defaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func defaultClassification(code Code) Classification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
