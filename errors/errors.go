package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified weave error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf returns the error code of err, or ErrCodeInternal if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

// --- Common Error Constructors ---

// OutOfRangeOffset creates a new Error for an insertion offset beyond the source length.
func OutOfRangeOffset(offset, length int) *Error {
	return &Error{
		Code: ErrCodeOutOfRangeOffset, Message: fmt.Sprintf("insertion offset %d exceeds source length %d", offset, length),
		Retryable: false,
		Details:   map[string]any{"offset": offset, "length": length},
	}
}

// NegativeOffset creates a new Error for a negative insertion offset.
func NegativeOffset(offset int) *Error {
	return &Error{
		Code: ErrCodeNegativeOffset, Message: fmt.Sprintf("insertion offset %d is negative", offset),
		Retryable: false,
		Details:   map[string]any{"offset": offset},
	}
}

// InvalidOption creates a new Error for an invalid option value.
func InvalidOption(option, reason string) *Error {
	details := make(map[string]any)
	if option != "" {
		details["option"] = option
	}
	return &Error{
		Code: ErrCodeInvalidOption, Message: fmt.Sprintf("invalid option: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new Error for validation failures.
func Validation(message string) *Error {
	return &Error{
		Code: ErrCodeInvalidOption, Message: message,
		Retryable: false,
	}
}

// InvalidEncoding creates a new Error for output that is not valid UTF-8.
func InvalidEncoding(reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidEncoding, Message: fmt.Sprintf("invalid encoding: %s", reason),
		Retryable: false,
	}
}

// ReadFailed creates a new Error for a failed read from an origin or insertion source.
func ReadFailed(source string, cause error) *Error {
	return &Error{
		Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading from %s failed", source),
		Retryable: true,
		Details:   map[string]any{"source": source}, Cause: cause,
	}
}

// WriteFailed creates a new Error for a failed write to the target.
func WriteFailed(cause error) *Error {
	return &Error{
		Code: ErrCodeWriteFailed, Message: "writing to target failed",
		Retryable: true, Cause: cause,
	}
}

// Internal creates a new Error for an unexpected internal error.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}
