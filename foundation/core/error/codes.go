// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the array layer, the
//              configuration loader and the benchmark tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Replaced platform codes with array-domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Array access and shape
	CodeIndexOutOfBounds Code = "INDEX_OUT_OF_BOUNDS"
	CodeInvalidRange     Code = "INVALID_RANGE"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"

	// Operation support
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"

	// Element lookups
	CodeNoSuchElement      Code = "NO_SUCH_ELEMENT"
	CodeMoreThanOneElement Code = "MORE_THAN_ONE_ELEMENT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeIndexOutOfBounds, CodeInvalidRange, CodeInvalidArgument,
		CodeUnsupportedOperation,
		CodeNoSuchElement, CodeMoreThanOneElement,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIndexOutOfBounds, CodeInvalidRange, CodeInvalidArgument:
		return "bounds"
	case CodeUnsupportedOperation:
		return "support"
	case CodeNoSuchElement, CodeMoreThanOneElement:
		return "lookup"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsProgrammingError reports whether the code marks a caller bug rather than
// a data-dependent condition. Errors with these codes are raised as panics.
func (c Code) IsProgrammingError() bool {
	switch c {
	case CodeIndexOutOfBounds, CodeInvalidRange, CodeInvalidArgument, CodeUnsupportedOperation:
		return true
	default:
		return false
	}
}
