// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logging layer can pick
//              an appropriate log level for each failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.2.0: Severity mapping for array-domain codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected, data-dependent condition
	// Examples: empty input to First, no element matching a predicate
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single operation
	SeverityMedium

	// SeverityHigh indicates a caller bug
	// Examples: index out of bounds, sorting a boolean array
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIndexOutOfBounds, CodeInvalidRange, CodeInvalidArgument, CodeUnsupportedOperation:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeCanceled:
		return SeverityMedium

	case CodeNoSuchElement, CodeMoreThanOneElement, CodeNotFound, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
