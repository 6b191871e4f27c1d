// Package errors provides structured error types for sprintdeck.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Process exit codes derived from the error category
//
// Every error in this domain is terminal: nothing is retried, and the run
// either produces all of its outputs or none of them.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - *_NOT_FOUND: Resource not found
//   - *_FAILED: A stage could not complete
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInputNotFound, "no such file: %s", path)
//	if errors.Is(err, errors.ErrCodeInputNotFound) {
//	    // Handle missing input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeWrite, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeMissingField    Code = "MISSING_FIELD"

	// Resource not found errors
	ErrCodeInputNotFound Code = "INPUT_NOT_FOUND"

	// Stage failures
	ErrCodeRender Code = "RENDER_FAILED"
	ErrCodeWrite  Code = "WRITE_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by typed errors that carry their own code.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It walks the error chain and compares the first code it finds.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// The outermost coded error in the chain wins.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Exit codes returned by ExitCode.
const (
	ExitFailure = 1 // unexpected or render failures
	ExitInput   = 2 // the input could not be read or is malformed
	ExitWrite   = 3 // the output could not be written
)

// ExitCode maps an error to a process exit status.
// A nil error maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeInputNotFound, ErrCodeMissingField, ErrCodeInvalidInput,
		ErrCodeInvalidConfig, ErrCodeInvalidFormat, ErrCodeInvalidGeometry:
		return ExitInput
	case ErrCodeWrite:
		return ExitWrite
	default:
		return ExitFailure
	}
}

// MissingFieldError reports a required column that is absent from the
// input, either from the header (Row < 0) or from a single data row.
type MissingFieldError struct {
	Field string // Column name as the layout knows it (mission, name, time)
	Row   int    // 0-based data row index, or -1 for the header
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("missing column %q in header", e.Field)
	}
	return fmt.Sprintf("row %d: missing field %q", e.Row, e.Field)
}

// Code returns the error code for this error type.
func (e *MissingFieldError) Code() Code {
	return ErrCodeMissingField
}
