// File: standards.go
// Title: Standard Error Constructors
// Description: Constructors for the failure kinds shared across modules: bounds
//              and range violations, unsupported operations, empty-input and
//              cardinality lookups, invalid arguments and configuration errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-03-02 v0.2.0: Array-domain constructors

package errors

import (
	"fmt"

	perror "github.com/msto63/primarray/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModulePrimarray = "primarray"
	ModuleConfig    = "config"
	ModuleBench     = "bench"
)

// IndexOutOfBounds reports an index outside [0, length)
func IndexOutOfBounds(module, operation string, index, length int) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of bounds for length %d", index, length).
		Code(perror.CodeIndexOutOfBounds).
		Severity(perror.SeverityHigh).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// RangeOutOfBounds reports a [from, to) range that leaves [0, length]
func RangeOutOfBounds(module, operation string, from, to, length int) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("fromIndex: %d, toIndex: %d, size: %d", from, to, length).
		Code(perror.CodeIndexOutOfBounds).
		Severity(perror.SeverityHigh).
		Detail("from", from).
		Detail("to", to).
		Detail("length", length).
		Build()
}

// InvalidRange reports a range whose start lies after its end
func InvalidRange(module, operation string, from, to int) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("fromIndex: %d > toIndex: %d", from, to).
		Code(perror.CodeInvalidRange).
		Severity(perror.SeverityHigh).
		Detail("from", from).
		Detail("to", to).
		Build()
}

// Unsupported reports an operation the receiver's kind cannot perform
func Unsupported(module, operation, kind, reason string) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(perror.CodeUnsupportedOperation).
		Severity(perror.SeverityHigh).
		Detail("kind", kind).
		Build()
}

// NoSuchElement reports a lookup that found nothing to return
func NoSuchElement(module, operation, reason string) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(perror.CodeNoSuchElement).
		Severity(perror.SeverityLow).
		Build()
}

// MoreThanOne reports a single-element lookup that matched several elements
func MoreThanOne(module, operation, reason string) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(perror.CodeMoreThanOneElement).
		Severity(perror.SeverityLow).
		Build()
}

// InvalidArgument reports an argument outside the accepted domain
func InvalidArgument(module, operation, name string, value interface{}, expected string) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid %s for %s.%s: %v (expected %s)", name, module, operation, value, expected).
		Code(perror.CodeInvalidArgument).
		Severity(perror.SeverityHigh).
		Detail("argument", name).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// InvalidInput reports user input (flags, files) that cannot be used
func InvalidInput(module, operation, field string, value interface{}, reason string) *perror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid %s %q: %s", field, fmt.Sprint(value), reason).
		Code(perror.CodeInvalidInput).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// InvalidConfig reports a configuration value that fails validation
func InvalidConfig(module, key string, value interface{}, reason string) *perror.Error {
	return NewErrorBuilder(module).
		Operation("validate").
		Messagef("invalid configuration %s=%v: %s", key, value, reason).
		Code(perror.CodeInvalidConfig).
		Severity(perror.SeverityMedium).
		Detail("key", key).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OperationFailed wraps a failure from a dependent call
func OperationFailed(module, operation string, cause error) *perror.Error {
	code := perror.GetCode(cause)
	if code == perror.CodeUnknown {
		code = perror.CodeInternal
	}
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(code).
		Severity(perror.GetSeverity(cause)).
		Build()
}

// ExtractDetails extracts all details from a core error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := perror.As(err); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
