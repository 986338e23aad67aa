// Package validation provides struct validation using go-playground/validator.
// Validation failures are reported as coded weave errors with per-field details.
package validation
