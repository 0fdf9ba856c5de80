// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, periods, configuration, output formats
//   - Data/Resource errors (200-299): Missing snapshot files, absent stock codes, query failures
//   - Schema errors (300-399): Snapshot files missing required columns
//   - Parse errors (400-499): Unparseable dates or values in snapshot rows
//   - Chart errors (500-599): Chart rendering and serialization failures
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidPeriod, "invalid period type")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeStockCodeNotFound, "stock code %d not found", code)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeQueryFailed, "failed to execute query", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeFileNotFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsNotFound checks if an error reports a missing snapshot file or a stock
// code absent from one of the snapshots.
func IsNotFound(err error) bool {
	code := GetCode(err)

	return code == ErrCodeFileNotFound || code == ErrCodeStockCodeNotFound
}

// IsValidationError checks if an error was raised by parameter or
// configuration validation, before any file was opened.
func IsValidationError(err error) bool {
	code := GetCode(err)

	return code >= 100 && code < 200
}

// IsSchemaError checks if an error reports a snapshot file whose columns do
// not match the required schema.
func IsSchemaError(err error) bool {
	code := GetCode(err)

	return code >= 300 && code < 400
}

// IsParseError checks if an error reports a snapshot value that could not be
// parsed into its typed representation.
func IsParseError(err error) bool {
	code := GetCode(err)

	return code >= 400 && code < 500
}

// MissingColumnsError represents an error when a snapshot file lacks one or
// more of the columns required by the comparison schema.
type MissingColumnsError struct {
	File    string   // Snapshot file path
	Columns []string // Missing column names, sorted
}

// NewMissingColumnsError creates a new MissingColumnsError.
func NewMissingColumnsError(file string, columns []string) *MissingColumnsError {
	return &MissingColumnsError{
		File:    file,
		Columns: columns,
	}
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("file %s is missing required columns: %s", e.File, strings.Join(e.Columns, ", "))
}

// IsMissingColumnsError checks if an error is a MissingColumnsError.
// It uses errors.As to check the error chain.
func IsMissingColumnsError(err error) bool {
	var missingErr *MissingColumnsError

	return errors.As(err, &missingErr)
}
