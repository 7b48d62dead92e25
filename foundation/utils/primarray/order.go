// File: order.go
// Title: Ordering and In-Place Structural Operations
// Description: Non-mutating sorted views, in-place reverse, shuffle and
//              descending sort, and array-returning slicing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.0: ShuffleWith takes a RandomSource

package primarray

import (
	"cmp"
	"slices"
)

// ===== Sorted views =====

// Sorted returns the elements in ascending order. Boolean arrays panic.
func Sorted[T Element](a PrimitiveArray[T]) []T {
	return SortedArray(a).Data()
}

// SortedDescending returns the elements in descending order
func SortedDescending[T Element](a PrimitiveArray[T]) []T {
	return SortedArrayDescending(a).Data()
}

// SortedArray returns a sorted copy of a with the same kind. Boolean arrays
// panic with CodeUnsupportedOperation at any length, including 0 and 1.
func SortedArray[T Element](a PrimitiveArray[T]) PrimitiveArray[T] {
	c := a.CopyOf()
	c.Sort()
	return c
}

func SortedArrayDescending[T Element](a PrimitiveArray[T]) PrimitiveArray[T] {
	c := a.CopyOf()
	SortDescending(c)
	return c
}

// SortedBy returns the elements ordered by selector. Equal keys keep their
// relative order.
func SortedBy[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) []T {
	return SortedWith(a, func(x, y T) int { return cmp.Compare(selector(x), selector(y)) })
}

func SortedByDescending[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) []T {
	return SortedWith(a, func(x, y T) int { return cmp.Compare(selector(y), selector(x)) })
}

// SortedWith returns the elements ordered by comparator, stably
func SortedWith[T Element](a PrimitiveArray[T], comparator func(x, y T) int) []T {
	result := a.ToSlice()
	slices.SortStableFunc(result, comparator)
	return result
}

// ===== In place =====

// Reverse reverses a in place
func Reverse[T Element](a PrimitiveArray[T]) {
	data := a.Data()
	mid := len(data)/2 - 1
	if mid < 0 {
		return
	}
	last := len(data) - 1
	for i := 0; i <= mid; i++ {
		data[i], data[last-i] = data[last-i], data[i]
	}
}

// ReverseRange reverses [from, to) in place
func ReverseRange[T Element](a PrimitiveArray[T], from, to int) {
	data := a.Data()
	checkRange("ReverseRange", from, to, len(data))
	mid := (from + to) / 2
	if from == mid {
		return
	}
	reverseIndex := to - 1
	for i := from; i < mid; i++ {
		data[i], data[reverseIndex] = data[reverseIndex], data[i]
		reverseIndex--
	}
}

// ReversedArray returns a reversed copy of a with the same kind
func ReversedArray[T Element](a PrimitiveArray[T]) PrimitiveArray[T] {
	c := a.CopyOf()
	Reverse(c)
	return c
}

// SortDescending sorts a in place, largest first. Float NaNs come first.
// Boolean arrays panic at any length, including 0 and 1.
func SortDescending[T Element](a PrimitiveArray[T]) {
	a.Sort()
	Reverse(a)
}

// SortDescendingRange sorts [from, to) in place, largest first
func SortDescendingRange[T Element](a PrimitiveArray[T], from, to int) {
	a.SortRange(from, to)
	ReverseRange(a, from, to)
}

// Shuffle permutes a in place using the package-level random source
func Shuffle[T Element](a PrimitiveArray[T]) {
	ShuffleWith(a, globalSource{})
}

// ShuffleWith permutes a in place with Fisher-Yates, walking from the last
// index down to 1. A seeded rng gives a reproducible permutation.
func ShuffleWith[T Element](a PrimitiveArray[T], rng RandomSource) {
	data := a.Data()
	for i := len(data) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}

// ===== Array slicing =====

// SliceArray returns [from, to) as a new array of the same kind
func SliceArray[T Element](a PrimitiveArray[T], from, to int) PrimitiveArray[T] {
	return a.CopyOfRange(from, to)
}

// SliceArrayIndices returns the elements at indices as a new array
func SliceArrayIndices[T Element](a PrimitiveArray[T], indices ...int) PrimitiveArray[T] {
	result := a.NewArray(len(indices))
	data := result.Data()
	for i, idx := range indices {
		data[i] = a.Get(idx)
	}
	return result
}
