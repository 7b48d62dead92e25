// File: errors_test.go
// Title: Shared Error Constructor Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package errors

import (
	"errors"
	"strings"
	"testing"

	perror "github.com/msto63/primarray/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Code(perror.CodeInvalidArgument).
			Severity(perror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("module = %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("operation = %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("key = %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if err.Severity() != perror.SeverityHigh {
			t.Errorf("Severity() = %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message and code", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Message() != "testmodule.test_op failed" {
			t.Errorf("Message() = %q", err.Message())
		}
		if err.Code() != perror.CodeInternal {
			t.Errorf("Code() = %v", err.Code())
		}

		err = NewErrorBuilder("testmodule").Build()
		if err.Message() != "testmodule operation failed" {
			t.Errorf("Message() = %q", err.Message())
		}
	})
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *perror.Error
		code     perror.Code
		severity perror.Severity
		message  string
	}{
		{
			name:     "index out of bounds",
			err:      IndexOutOfBounds(ModulePrimarray, "Get", 7, 5),
			code:     perror.CodeIndexOutOfBounds,
			severity: perror.SeverityHigh,
			message:  "index 7 out of bounds for length 5",
		},
		{
			name:     "range out of bounds",
			err:      RangeOutOfBounds(ModulePrimarray, "CopyOfRange", 0, 9, 4),
			code:     perror.CodeIndexOutOfBounds,
			severity: perror.SeverityHigh,
			message:  "fromIndex: 0, toIndex: 9, size: 4",
		},
		{
			name:     "invalid range",
			err:      InvalidRange(ModulePrimarray, "FillRange", 3, 1),
			code:     perror.CodeInvalidRange,
			severity: perror.SeverityHigh,
			message:  "fromIndex: 3 > toIndex: 1",
		},
		{
			name:     "unsupported",
			err:      Unsupported(ModulePrimarray, "Sort", "Boolean", "boolean arrays do not support sorting"),
			code:     perror.CodeUnsupportedOperation,
			severity: perror.SeverityHigh,
			message:  "boolean arrays do not support sorting",
		},
		{
			name:     "no such element",
			err:      NoSuchElement(ModulePrimarray, "First", "array is empty"),
			code:     perror.CodeNoSuchElement,
			severity: perror.SeverityLow,
			message:  "array is empty",
		},
		{
			name:     "more than one",
			err:      MoreThanOne(ModulePrimarray, "Single", "array has more than one element"),
			code:     perror.CodeMoreThanOneElement,
			severity: perror.SeverityLow,
			message:  "array has more than one element",
		},
		{
			name:     "invalid config",
			err:      InvalidConfig(ModuleConfig, "bench.size", -4, "must be positive"),
			code:     perror.CodeInvalidConfig,
			severity: perror.SeverityMedium,
			message:  "invalid configuration bench.size=-4: must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.severity)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument(ModulePrimarray, "CopyOfSize", "newSize", -1, "newSize >= 0")
	if !strings.Contains(err.Error(), "invalid newSize for primarray.CopyOfSize: -1") {
		t.Errorf("Error() = %q", err.Error())
	}
	if v, _ := err.Detail("value"); v != -1 {
		t.Errorf("value detail = %v", v)
	}
}

func TestOperationFailed(t *testing.T) {
	cause := NoSuchElement(ModulePrimarray, "Reduce", "empty array can't be reduced")
	err := OperationFailed(ModuleBench, "run", cause)

	if err.Code() != perror.CodeNoSuchElement {
		t.Errorf("Code() = %v, want the cause's code", err.Code())
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
	if ExtractModule(err) != ModuleBench {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}

	plain := OperationFailed(ModuleBench, "run", errors.New("disk full"))
	if plain.Code() != perror.CodeInternal {
		t.Errorf("Code() = %v, want INTERNAL for plain causes", plain.Code())
	}
}

func TestExtractHelpers(t *testing.T) {
	err := IndexOutOfBounds(ModulePrimarray, "Set", 3, 2)
	if !IsModuleOperation(err, ModulePrimarray, "Set") {
		t.Error("IsModuleOperation() = false")
	}
	if ExtractModule(errors.New("plain")) != "" {
		t.Error("ExtractModule() on plain error should be empty")
	}
	if ExtractDetails(nil) != nil {
		t.Error("ExtractDetails(nil) should be nil")
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleBench, "parseKinds", "kind", "quad", "unknown element kind")
	if err.Code() != perror.CodeInvalidInput {
		t.Errorf("Code() = %v, want %v", err.Code(), perror.CodeInvalidInput)
	}
	if err.Message() != `invalid kind "quad": unknown element kind` {
		t.Errorf("Message() = %q", err.Message())
	}
	if v, _ := err.Detail("field"); v != "kind" {
		t.Errorf("field detail = %v", v)
	}
}
