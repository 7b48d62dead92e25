// File: errors.go
// Title: Array Failure Helpers
// Description: Precondition checks shared by the wrappers and the generic
//              operations, the sentinel errors callers match with errors.Is,
//              and Catch for turning a failure panic back into an error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package primarray

import (
	perror "github.com/msto63/primarray/foundation/core/error"
	"github.com/msto63/primarray/foundation/core/errors"
)

// Sentinel errors. errors.Is matches any *perror.Error carrying the same code.
var (
	ErrIndexOutOfBounds     = perror.New("index out of bounds").WithCode(perror.CodeIndexOutOfBounds)
	ErrInvalidRange         = perror.New("invalid range").WithCode(perror.CodeInvalidRange)
	ErrInvalidArgument      = perror.New("invalid argument").WithCode(perror.CodeInvalidArgument)
	ErrUnsupportedOperation = perror.New("unsupported operation").WithCode(perror.CodeUnsupportedOperation)
	ErrNoSuchElement        = perror.New("no such element").WithCode(perror.CodeNoSuchElement)
	ErrMoreThanOneElement   = perror.New("more than one element").WithCode(perror.CodeMoreThanOneElement)
)

const (
	msgEmpty            = "Array is empty."
	msgNoMatch          = "Array contains no element matching the predicate."
	msgMoreThanOne      = "Array has more than one element."
	msgMoreThanOneMatch = "Array contains more than one matching element."
	msgEmptyReduce      = "Empty array can't be reduced."
	msgNoNonNull        = "No element of the array was transformed to a non-null value."
)

// Catch runs fn and returns the structured failure it panics with, if any.
// Panics that do not carry a *perror.Error propagate unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*perror.Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func checkIndex(op string, index, length int) {
	if index < 0 || index >= length {
		panic(errors.IndexOutOfBounds(errors.ModulePrimarray, op, index, length))
	}
}

// checkRange validates a half-open [from, to) range against length.
func checkRange(op string, from, to, length int) {
	if from < 0 || to > length {
		panic(errors.RangeOutOfBounds(errors.ModulePrimarray, op, from, to, length))
	}
	if from > to {
		panic(errors.InvalidRange(errors.ModulePrimarray, op, from, to))
	}
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(errors.InvalidArgument(errors.ModulePrimarray, op, "n", n, "n >= 0"))
	}
}

func noSuchElement(op, reason string) error {
	return errors.NoSuchElement(errors.ModulePrimarray, op, reason)
}

func moreThanOne(op, reason string) error {
	return errors.MoreThanOne(errors.ModulePrimarray, op, reason)
}

func unsupportedSort(op string, kind Kind) *perror.Error {
	return errors.Unsupported(errors.ModulePrimarray, op, kind.String(), kind.String()+" arrays have no ordering to sort by")
}

func invalidSize(op string, size int) *perror.Error {
	return errors.InvalidArgument(errors.ModulePrimarray, op, "size", size, "size >= 0")
}
