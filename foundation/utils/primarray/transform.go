// File: transform.go
// Title: Transform Operations
// Description: Element-wise mapping, filtering, flattening, de-duplication,
//              prefix/suffix selection and iteration helpers. Every function
//              here leaves its input untouched and allocates a fresh result,
//              except the ForEach and OnEach families.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-20
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation
// - 2025-02-20 v0.1.0: Sequence-returning FlatMapSeq and Indices

package primarray

import (
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// IndexedValue pairs an element with its position
type IndexedValue[T any] struct {
	Index int
	Value T
}

// ===== Map =====

// Map applies transform to every element
func Map[T Element, R any](a PrimitiveArray[T], transform func(T) R) []R {
	data := a.Data()
	result := make([]R, len(data))
	for i, v := range data {
		result[i] = transform(v)
	}
	return result
}

func MapIndexed[T Element, R any](a PrimitiveArray[T], transform func(int, T) R) []R {
	data := a.Data()
	result := make([]R, len(data))
	for i, v := range data {
		result[i] = transform(i, v)
	}
	return result
}

// MapNotNull keeps only the results transform reports as present
func MapNotNull[T Element, R any](a PrimitiveArray[T], transform func(T) (R, bool)) []R {
	result := make([]R, 0)
	for _, v := range a.Data() {
		if r, ok := transform(v); ok {
			result = append(result, r)
		}
	}
	return result
}

func MapIndexedNotNull[T Element, R any](a PrimitiveArray[T], transform func(int, T) (R, bool)) []R {
	result := make([]R, 0)
	for i, v := range a.Data() {
		if r, ok := transform(i, v); ok {
			result = append(result, r)
		}
	}
	return result
}

// MapTo appends the mapped elements to dst and returns it
func MapTo[T Element, R any](a PrimitiveArray[T], dst []R, transform func(T) R) []R {
	for _, v := range a.Data() {
		dst = append(dst, transform(v))
	}
	return dst
}

// FlatMap concatenates the slices produced by transform
func FlatMap[T Element, R any](a PrimitiveArray[T], transform func(T) []R) []R {
	result := make([]R, 0)
	for _, v := range a.Data() {
		result = append(result, transform(v)...)
	}
	return result
}

func FlatMapIndexed[T Element, R any](a PrimitiveArray[T], transform func(int, T) []R) []R {
	result := make([]R, 0)
	for i, v := range a.Data() {
		result = append(result, transform(i, v)...)
	}
	return result
}

// FlatMapSeq concatenates the sequences produced by transform
func FlatMapSeq[T Element, R any](a PrimitiveArray[T], transform func(T) iter.Seq[R]) []R {
	result := make([]R, 0)
	for _, v := range a.Data() {
		for r := range transform(v) {
			result = append(result, r)
		}
	}
	return result
}

// ===== Filter =====

// Filter returns the elements satisfying predicate, in order
func Filter[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	return FilterTo(a, make([]T, 0), predicate)
}

func FilterIndexed[T Element](a PrimitiveArray[T], predicate func(int, T) bool) []T {
	result := make([]T, 0)
	for i, v := range a.Data() {
		if predicate(i, v) {
			result = append(result, v)
		}
	}
	return result
}

func FilterNot[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range a.Data() {
		if !predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterTo appends the matching elements to dst and returns it
func FilterTo[T Element](a PrimitiveArray[T], dst []T, predicate func(T) bool) []T {
	for _, v := range a.Data() {
		if predicate(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// ===== Distinct =====

// Distinct returns the elements without duplicates, keeping first occurrences
func Distinct[T Element](a PrimitiveArray[T]) []T {
	return ToSet(a).ToSlice()
}

// DistinctBy keeps the first element for each selector key
func DistinctBy[T Element, K comparable](a PrimitiveArray[T], selector func(T) K) []T {
	seen := mapset.NewThreadUnsafeSet[K]()
	result := make([]T, 0)
	for _, v := range a.Data() {
		if seen.Add(selector(v)) {
			result = append(result, v)
		}
	}
	return result
}

// WithIndex pairs every element with its index
func WithIndex[T Element](a PrimitiveArray[T]) []IndexedValue[T] {
	data := a.Data()
	result := make([]IndexedValue[T], len(data))
	for i, v := range data {
		result[i] = IndexedValue[T]{Index: i, Value: v}
	}
	return result
}

// ===== Drop / Take =====

// Drop returns all but the first n elements. Negative n panics.
func Drop[T Element](a PrimitiveArray[T], n int) []T {
	checkCount("Drop", n)
	data := a.Data()
	return slices.Clone(data[min(n, len(data)):])
}

// DropLast returns all but the last n elements. Negative n panics.
func DropLast[T Element](a PrimitiveArray[T], n int) []T {
	checkCount("DropLast", n)
	data := a.Data()
	return slices.Clone(data[:max(len(data)-n, 0)])
}

func DropWhile[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	data := a.Data()
	i := 0
	for i < len(data) && predicate(data[i]) {
		i++
	}
	return slices.Clone(data[i:])
}

func DropLastWhile[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	data := a.Data()
	end := len(data)
	for end > 0 && predicate(data[end-1]) {
		end--
	}
	return slices.Clone(data[:end])
}

// Take returns the first n elements. Negative n panics.
func Take[T Element](a PrimitiveArray[T], n int) []T {
	checkCount("Take", n)
	data := a.Data()
	return slices.Clone(data[:min(n, len(data))])
}

// TakeLast returns the last n elements. Negative n panics.
func TakeLast[T Element](a PrimitiveArray[T], n int) []T {
	checkCount("TakeLast", n)
	data := a.Data()
	return slices.Clone(data[max(len(data)-n, 0):])
}

func TakeWhile[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	data := a.Data()
	end := 0
	for end < len(data) && predicate(data[end]) {
		end++
	}
	return slices.Clone(data[:end])
}

func TakeLastWhile[T Element](a PrimitiveArray[T], predicate func(T) bool) []T {
	data := a.Data()
	start := len(data)
	for start > 0 && predicate(data[start-1]) {
		start--
	}
	return slices.Clone(data[start:])
}

// ===== Slice =====

// Slice returns a copy of [from, to) as a plain slice
func Slice[T Element](a PrimitiveArray[T], from, to int) []T {
	data := a.Data()
	checkRange("Slice", from, to, len(data))
	return slices.Clone(data[from:to])
}

// SliceIndices returns the elements at the given indices, in that order
func SliceIndices[T Element](a PrimitiveArray[T], indices ...int) []T {
	result := make([]T, len(indices))
	for i, idx := range indices {
		result[i] = a.Get(idx)
	}
	return result
}

// Reversed returns the elements in reverse order
func Reversed[T Element](a PrimitiveArray[T]) []T {
	result := a.ToSlice()
	slices.Reverse(result)
	return result
}

// ToList returns an independent copy of the elements
func ToList[T Element](a PrimitiveArray[T]) []T {
	return a.ToSlice()
}

// ToCollection appends every element to dst and returns it
func ToCollection[T Element](a PrimitiveArray[T], dst []T) []T {
	return append(dst, a.Data()...)
}

// ===== Iteration =====

func ForEach[T Element](a PrimitiveArray[T], action func(T)) {
	for _, v := range a.Data() {
		action(v)
	}
}

func ForEachIndexed[T Element](a PrimitiveArray[T], action func(int, T)) {
	for i, v := range a.Data() {
		action(i, v)
	}
}

// OnEach runs action on every element and returns a for chaining
func OnEach[T Element](a PrimitiveArray[T], action func(T)) PrimitiveArray[T] {
	ForEach(a, action)
	return a
}

func OnEachIndexed[T Element](a PrimitiveArray[T], action func(int, T)) PrimitiveArray[T] {
	ForEachIndexed(a, action)
	return a
}

// Indices yields 0 .. Len()-1
func Indices[T Element](a PrimitiveArray[T]) iter.Seq[int] {
	n := a.Len()
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// LastIndex returns Len()-1, which is -1 for empty arrays
func LastIndex[T Element](a PrimitiveArray[T]) int {
	return a.Len() - 1
}

func IsNotEmpty[T Element](a PrimitiveArray[T]) bool {
	return a.Len() > 0
}
