// File: search.go
// Title: Search and Predicate Operations
// Description: Element lookup, positional access with absence markers,
//              single-element extraction, predicate quantifiers and random
//              element selection.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.0: Random selection through RandomSource

package primarray

import (
	"math/rand/v2"
)

// RandomSource supplies uniformly distributed indices in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// ===== Membership =====

// Contains reports whether value occurs in a. Floats compare with ==, so NaN
// is never found.
func Contains[T Element](a PrimitiveArray[T], value T) bool {
	return IndexOf(a, value) >= 0
}

// ContainsAll reports whether every value occurs in a
func ContainsAll[T Element](a PrimitiveArray[T], values ...T) bool {
	for _, v := range values {
		if !Contains(a, v) {
			return false
		}
	}
	return true
}

// IndexOf returns the first index of value, or -1
func IndexOf[T Element](a PrimitiveArray[T], value T) int {
	for i, v := range a.Data() {
		if v == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index of value, or -1
func LastIndexOf[T Element](a PrimitiveArray[T], value T) int {
	data := a.Data()
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == value {
			return i
		}
	}
	return -1
}

func IndexOfFirst[T Element](a PrimitiveArray[T], predicate func(T) bool) int {
	for i, v := range a.Data() {
		if predicate(v) {
			return i
		}
	}
	return -1
}

func IndexOfLast[T Element](a PrimitiveArray[T], predicate func(T) bool) int {
	data := a.Data()
	for i := len(data) - 1; i >= 0; i-- {
		if predicate(data[i]) {
			return i
		}
	}
	return -1
}

// ===== First / Last =====

// First returns the first element. Empty arrays yield CodeNoSuchElement.
func First[T Element](a PrimitiveArray[T]) (T, error) {
	if v, ok := FirstOrNull(a); ok {
		return v, nil
	}
	var zero T
	return zero, noSuchElement("First", msgEmpty)
}

// FirstMatch returns the first element satisfying predicate
func FirstMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, error) {
	if v, ok := FirstMatchOrNull(a, predicate); ok {
		return v, nil
	}
	var zero T
	return zero, noSuchElement("FirstMatch", msgNoMatch)
}

func FirstOrNull[T Element](a PrimitiveArray[T]) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[0], true
}

func FirstMatchOrNull[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, bool) {
	for _, v := range a.Data() {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Find is FirstMatchOrNull
func Find[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, bool) {
	return FirstMatchOrNull(a, predicate)
}

// Last returns the last element. Empty arrays yield CodeNoSuchElement.
func Last[T Element](a PrimitiveArray[T]) (T, error) {
	if v, ok := LastOrNull(a); ok {
		return v, nil
	}
	var zero T
	return zero, noSuchElement("Last", msgEmpty)
}

func LastMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, error) {
	if v, ok := LastMatchOrNull(a, predicate); ok {
		return v, nil
	}
	var zero T
	return zero, noSuchElement("LastMatch", msgNoMatch)
}

func LastOrNull[T Element](a PrimitiveArray[T]) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[len(data)-1], true
}

func LastMatchOrNull[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, bool) {
	data := a.Data()
	for i := len(data) - 1; i >= 0; i-- {
		if predicate(data[i]) {
			return data[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLast is LastMatchOrNull
func FindLast[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, bool) {
	return LastMatchOrNull(a, predicate)
}

// ===== Single =====

// Single returns the only element. Empty arrays yield CodeNoSuchElement and
// longer ones CodeMoreThanOneElement.
func Single[T Element](a PrimitiveArray[T]) (T, error) {
	var zero T
	switch data := a.Data(); len(data) {
	case 0:
		return zero, noSuchElement("Single", msgEmpty)
	case 1:
		return data[0], nil
	default:
		return zero, moreThanOne("Single", msgMoreThanOne)
	}
}

// SingleMatch returns the only element satisfying predicate
func SingleMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, error) {
	var single T
	found := false
	for _, v := range a.Data() {
		if predicate(v) {
			if found {
				var zero T
				return zero, moreThanOne("SingleMatch", msgMoreThanOneMatch)
			}
			single = v
			found = true
		}
	}
	if !found {
		var zero T
		return zero, noSuchElement("SingleMatch", msgNoMatch)
	}
	return single, nil
}

// SingleOrNull reports absence for both empty and multi-element arrays
func SingleOrNull[T Element](a PrimitiveArray[T]) (T, bool) {
	data := a.Data()
	if len(data) != 1 {
		var zero T
		return zero, false
	}
	return data[0], true
}

func SingleMatchOrNull[T Element](a PrimitiveArray[T], predicate func(T) bool) (T, bool) {
	var single T
	found := false
	for _, v := range a.Data() {
		if predicate(v) {
			if found {
				var zero T
				return zero, false
			}
			single = v
			found = true
		}
	}
	return single, found
}

// ===== Quantifiers =====

// Any reports whether a has at least one element
func Any[T Element](a PrimitiveArray[T]) bool {
	return a.Len() > 0
}

func AnyMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) bool {
	return IndexOfFirst(a, predicate) >= 0
}

// All reports whether every element satisfies predicate. Vacuously true for
// empty arrays.
func All[T Element](a PrimitiveArray[T], predicate func(T) bool) bool {
	for _, v := range a.Data() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// None reports whether a is empty
func None[T Element](a PrimitiveArray[T]) bool {
	return a.Len() == 0
}

func NoneMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) bool {
	return !AnyMatch(a, predicate)
}

func Count[T Element](a PrimitiveArray[T]) int {
	return a.Len()
}

func CountMatch[T Element](a PrimitiveArray[T], predicate func(T) bool) int {
	count := 0
	for _, v := range a.Data() {
		if predicate(v) {
			count++
		}
	}
	return count
}

// ===== Positional access =====

// ElementAtOrNull returns the element at index, or false when index is out of range
func ElementAtOrNull[T Element](a PrimitiveArray[T], index int) (T, bool) {
	return GetOrNull(a, index)
}

// ElementAtOrElse returns the element at index, or defaultValue(index)
func ElementAtOrElse[T Element](a PrimitiveArray[T], index int, defaultValue func(int) T) T {
	return GetOrElse(a, index, defaultValue)
}

func GetOrNull[T Element](a PrimitiveArray[T], index int) (T, bool) {
	data := a.Data()
	if index < 0 || index >= len(data) {
		var zero T
		return zero, false
	}
	return data[index], true
}

func GetOrElse[T Element](a PrimitiveArray[T], index int, defaultValue func(int) T) T {
	if v, ok := GetOrNull(a, index); ok {
		return v
	}
	return defaultValue(index)
}

// Component1 through Component5 return the element at positions 0..4 and
// panic when the array is shorter.
func Component1[T Element](a PrimitiveArray[T]) T { return a.Get(0) }
func Component2[T Element](a PrimitiveArray[T]) T { return a.Get(1) }
func Component3[T Element](a PrimitiveArray[T]) T { return a.Get(2) }
func Component4[T Element](a PrimitiveArray[T]) T { return a.Get(3) }
func Component5[T Element](a PrimitiveArray[T]) T { return a.Get(4) }

// ===== Transform-and-find =====

// FirstNotNullOf returns the first present result of transform
func FirstNotNullOf[T Element, R any](a PrimitiveArray[T], transform func(T) (R, bool)) (R, error) {
	if r, ok := FirstNotNullOfOrNull(a, transform); ok {
		return r, nil
	}
	var zero R
	return zero, noSuchElement("FirstNotNullOf", msgNoNonNull)
}

func FirstNotNullOfOrNull[T Element, R any](a PrimitiveArray[T], transform func(T) (R, bool)) (R, bool) {
	for _, v := range a.Data() {
		if r, ok := transform(v); ok {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// ===== Random =====

// Random returns a uniformly chosen element using the package-level source
func Random[T Element](a PrimitiveArray[T]) (T, error) {
	return RandomWith(a, globalSource{})
}

// RandomWith returns an element chosen by rng
func RandomWith[T Element](a PrimitiveArray[T], rng RandomSource) (T, error) {
	if v, ok := RandomOrNullWith(a, rng); ok {
		return v, nil
	}
	var zero T
	return zero, noSuchElement("Random", msgEmpty)
}

func RandomOrNull[T Element](a PrimitiveArray[T]) (T, bool) {
	return RandomOrNullWith(a, globalSource{})
}

func RandomOrNullWith[T Element](a PrimitiveArray[T], rng RandomSource) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[rng.IntN(len(data))], true
}
