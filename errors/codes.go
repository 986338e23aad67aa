package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Placement errors
const (
	// ErrCodeOutOfRangeOffset indicates an insertion offset exceeds the source length.
	ErrCodeOutOfRangeOffset ErrorCode = "OUT_OF_RANGE_OFFSET"
	// ErrCodeNegativeOffset indicates an insertion offset is negative.
	ErrCodeNegativeOffset ErrorCode = "NEGATIVE_OFFSET"
	// ErrCodeUnsortedInput indicates a violated trusted-sort promise.
	// Never raised at runtime: detecting the violation would cost as much
	// as the sort the caller opted out of. Documented for completeness.
	ErrCodeUnsortedInput ErrorCode = "UNSORTED_INPUT"
)

// Configuration errors
const (
	// ErrCodeInvalidOption indicates an invalid option or configuration value.
	ErrCodeInvalidOption ErrorCode = "INVALID_OPTION"
)

// Encoding errors
const (
	// ErrCodeInvalidEncoding indicates an operation produced invalid UTF-8.
	ErrCodeInvalidEncoding ErrorCode = "INVALID_ENCODING"
)

// IO errors (retryable)
const (
	// ErrCodeReadFailed indicates a read from an origin or insertion source failed.
	ErrCodeReadFailed ErrorCode = "READ_FAILED"
	// ErrCodeWriteFailed indicates a write to the target failed.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeReadFailed:  true,
	ErrCodeWriteFailed: true,
	ErrCodeInternal:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
