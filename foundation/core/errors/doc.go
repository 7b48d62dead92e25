// Package errors provides the standard error constructors shared by all
// primarray modules.
//
// Package: errors
// Title: Shared Error Constructors
// Description: Wraps the core error type in a fluent builder and a small set of
// constructors (bounds, range, unsupported operation, lookup and
// configuration failures) so every module reports failures with the
// same codes, details and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-03-02 v0.2.0: Array-domain constructors replace the string/math/file helpers
//
// Every constructed error carries the "module" and "operation" details, which
// ExtractModule and ExtractOperation read back:
//
//	err := errors.IndexOutOfBounds(errors.ModulePrimarray, "Get", 7, 5)
//	errors.ExtractModule(err)    // "primarray"
//	errors.ExtractOperation(err) // "Get"
package errors
