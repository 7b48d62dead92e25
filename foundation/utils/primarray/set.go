// File: set.go
// Title: Set Operations
// Description: Insertion-ordered sets built from arrays and the set algebra
//              over them. Membership is backed by golang-set; iteration order
//              is kept alongside it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-13
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation

package primarray

import (
	"iter"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const maxPowerOfTwo = 1 << 30

// MapCapacity returns the hash table capacity that holds expectedSize entries
// without rehashing at a 0.75 load factor.
func MapCapacity(expectedSize int) int {
	switch {
	case expectedSize < 0:
		return expectedSize
	case expectedSize < 3:
		return expectedSize + 1
	case expectedSize < maxPowerOfTwo:
		return int(float32(expectedSize)/0.75 + 1)
	default:
		return math.MaxInt32
	}
}

// LinkedSet is a set that iterates in insertion order
type LinkedSet[T comparable] struct {
	order   []T
	members mapset.Set[T]
}

// NewLinkedSet creates an empty set sized for capacity elements
func NewLinkedSet[T comparable](capacity int) *LinkedSet[T] {
	capacity = max(capacity, 0)
	return &LinkedSet[T]{
		order:   make([]T, 0, capacity),
		members: mapset.NewThreadUnsafeSetWithSize[T](capacity),
	}
}

// Add inserts v and reports whether it was absent
func (s *LinkedSet[T]) Add(v T) bool {
	if !s.members.Add(v) {
		return false
	}
	s.order = append(s.order, v)
	return true
}

// Remove deletes v and reports whether it was present
func (s *LinkedSet[T]) Remove(v T) bool {
	if !s.members.Contains(v) {
		return false
	}
	s.members.Remove(v)
	s.order = slices.DeleteFunc(s.order, func(e T) bool { return e == v })
	return true
}

func (s *LinkedSet[T]) Contains(v T) bool { return s.members.Contains(v) }
func (s *LinkedSet[T]) Len() int          { return len(s.order) }

// ToSlice returns the elements in insertion order
func (s *LinkedSet[T]) ToSlice() []T {
	return slices.Clone(s.order)
}

// All yields the elements in insertion order
func (s *LinkedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.order)
}

// Unordered exposes the membership set
func (s *LinkedSet[T]) Unordered() mapset.Set[T] {
	return s.members
}

// ===== Conversions =====

// ToSet returns the distinct elements of a in first-seen order
func ToSet[T Element](a PrimitiveArray[T]) *LinkedSet[T] {
	return ToMutableSet(a)
}

// ToMutableSet is ToSet; the result is owned by the caller
func ToMutableSet[T Element](a PrimitiveArray[T]) *LinkedSet[T] {
	data := a.Data()
	set := NewLinkedSet[T](MapCapacity(len(data)))
	for _, v := range data {
		set.Add(v)
	}
	return set
}

// ToHashSet returns the distinct elements with no ordering guarantee
func ToHashSet[T Element](a PrimitiveArray[T]) mapset.Set[T] {
	data := a.Data()
	set := mapset.NewThreadUnsafeSetWithSize[T](MapCapacity(len(data)))
	for _, v := range data {
		set.Add(v)
	}
	return set
}

// ===== Algebra =====

// Union returns the distinct elements of a followed by the new ones of other
func Union[T Element](a PrimitiveArray[T], other []T) *LinkedSet[T] {
	set := ToMutableSet(a)
	for _, v := range other {
		set.Add(v)
	}
	return set
}

// Intersect returns the distinct elements of a that also occur in other
func Intersect[T Element](a PrimitiveArray[T], other []T) *LinkedSet[T] {
	keep := mapset.NewThreadUnsafeSet[T](other...)
	set := NewLinkedSet[T](MapCapacity(a.Len()))
	for _, v := range a.Data() {
		if keep.Contains(v) {
			set.Add(v)
		}
	}
	return set
}

// Subtract returns the distinct elements of a that do not occur in other
func Subtract[T Element](a PrimitiveArray[T], other []T) *LinkedSet[T] {
	drop := mapset.NewThreadUnsafeSet[T](other...)
	set := NewLinkedSet[T](MapCapacity(a.Len()))
	for _, v := range a.Data() {
		if !drop.Contains(v) {
			set.Add(v)
		}
	}
	return set
}
