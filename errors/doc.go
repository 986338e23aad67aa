// Package errors provides structured error handling for weave.
// It implements coded error types with cause chaining, contextual
// details, and retryable detection for io-backed operations.
package errors
