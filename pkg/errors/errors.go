// Package errors provides structured error types for the AI-Architect application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - INFEASIBLE_*: Designs rejected by the feasibility validator
//   - NOT_FOUND: Resource not found
//   - STORAGE_*: Persistence failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid bedroom configuration: %s", cfg)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "failed to load design %s", id)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFacing    Code = "INVALID_FACING"
	ErrCodeInvalidBuilding  Code = "INVALID_BUILDING_TYPE"
	ErrCodeInvalidStaircase Code = "INVALID_STAIRCASE_TYPE"
	ErrCodeInvalidBedrooms  Code = "INVALID_BEDROOM_CONFIG"

	// Feasibility errors
	ErrCodeInfeasible Code = "INFEASIBLE_DESIGN"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Persistence errors
	ErrCodeStorage   Code = "STORAGE_ERROR"
	ErrCodeSerialize Code = "SERIALIZE_ERROR"

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
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

// FeasibilityError is returned when the design validator rejects an input.
// It carries the validator's error strings verbatim so callers can present
// the full list to the user.
type FeasibilityError struct {
	Errors []string
}

// Error implements the error interface.
func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("%s: design validation failed: %s",
		ErrCodeInfeasible, strings.Join(e.Errors, "; "))
}

// Code returns the error code for this error type.
func (e *FeasibilityError) Code() Code {
	return ErrCodeInfeasible
}

// Infeasible wraps a validator error list in a FeasibilityError.
func Infeasible(errs []string) *FeasibilityError {
	return &FeasibilityError{Errors: errs}
}

// AsFeasibility extracts a FeasibilityError from an error chain.
// Returns nil if the chain contains no feasibility failure.
func AsFeasibility(err error) *FeasibilityError {
	var fe *FeasibilityError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
