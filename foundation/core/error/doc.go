// Package error provides the structured error type used throughout primarray.
//
// Package: error
// Title: primarray Error Handling Framework
// Description: This package implements a structured error with a machine readable
// code, a severity, free-form details and a captured stack trace. The
// array layer raises these errors (as panic values for bounds and
// unsupported-operation failures, as return values for empty-input and
// cardinality failures) so callers can tell failure kinds apart by code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Array-domain codes, code based Is matching
//
// Usage:
//
//	import perror "github.com/msto63/primarray/foundation/core/error"
//
//	err := perror.New("index 7 out of bounds for length 5").
//		WithCode(perror.CodeIndexOutOfBounds).
//		WithDetail("index", 7).
//		WithDetail("length", 5)
//
//	if perror.HasCode(err, perror.CodeIndexOutOfBounds) {
//		// handle bounds failures specifically
//	}
//
//	// Two errors with the same known code match under errors.Is
//	errors.Is(err, perror.New("").WithCode(perror.CodeIndexOutOfBounds)) // true
package error
