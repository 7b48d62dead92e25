// File: group.go
// Title: Grouping and Keying Operations
// Description: GroupBy, Associate and the Grouping aggregations. Results are
//              insertion-ordered maps: keys keep the position of their first
//              occurrence.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-20
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation
// - 2025-02-20 v0.1.0: Grouping aggregations

package primarray

import (
	"fmt"
	"iter"
	"strings"
)

// OrderedMap is a map that iterates in key insertion order. Overwriting a
// key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty map sized for capacity keys
func NewOrderedMap[K comparable, V any](capacity int) *OrderedMap[K, V] {
	capacity = max(capacity, 0)
	return &OrderedMap[K, V]{
		keys:   make([]K, 0, capacity),
		values: make(map[K]V, capacity),
	}
}

// Set stores value under key
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order
func (m *OrderedMap[K, V]) Keys() []K {
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Values returns the values in key insertion order
func (m *OrderedMap[K, V]) Values() []V {
	result := make([]V, len(m.keys))
	for i, k := range m.keys {
		result[i] = m.values[k]
	}
	return result
}

// All yields the entries in key insertion order
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns the entries as a plain, unordered map
func (m *OrderedMap[K, V]) Map() map[K]V {
	result := make(map[K]V, len(m.values))
	for k, v := range m.values {
		result[k] = v
	}
	return result
}

// String renders the map as "{k=v, k=v}"
func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v=%v", k, m.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// ===== GroupBy =====

// GroupBy collects the elements under the key computed by keySelector
func GroupBy[T Element, K comparable](a PrimitiveArray[T], keySelector func(T) K) *OrderedMap[K, []T] {
	return GroupByTo(a, NewOrderedMap[K, []T](0), keySelector)
}

// GroupByValues collects valueTransform(v) under keySelector(v)
func GroupByValues[T Element, K comparable, V any](a PrimitiveArray[T], keySelector func(T) K, valueTransform func(T) V) *OrderedMap[K, []V] {
	dst := NewOrderedMap[K, []V](0)
	for _, v := range a.Data() {
		k := keySelector(v)
		group, _ := dst.Get(k)
		dst.Set(k, append(group, valueTransform(v)))
	}
	return dst
}

// GroupByTo appends the elements to the groups of dst and returns it
func GroupByTo[T Element, K comparable](a PrimitiveArray[T], dst *OrderedMap[K, []T], keySelector func(T) K) *OrderedMap[K, []T] {
	for _, v := range a.Data() {
		k := keySelector(v)
		group, _ := dst.Get(k)
		dst.Set(k, append(group, v))
	}
	return dst
}

// ===== Associate =====

// AssociateBy maps keySelector(v) to v. A later element with the same key
// replaces the value but not the key's position.
func AssociateBy[T Element, K comparable](a PrimitiveArray[T], keySelector func(T) K) *OrderedMap[K, T] {
	dst := NewOrderedMap[K, T](MapCapacity(a.Len()))
	for _, v := range a.Data() {
		dst.Set(keySelector(v), v)
	}
	return dst
}

func AssociateByValues[T Element, K comparable, V any](a PrimitiveArray[T], keySelector func(T) K, valueTransform func(T) V) *OrderedMap[K, V] {
	dst := NewOrderedMap[K, V](MapCapacity(a.Len()))
	for _, v := range a.Data() {
		dst.Set(keySelector(v), valueTransform(v))
	}
	return dst
}

// Associate builds a map from the key/value pairs produced by transform
func Associate[T Element, K comparable, V any](a PrimitiveArray[T], transform func(T) (K, V)) *OrderedMap[K, V] {
	return AssociateTo(a, NewOrderedMap[K, V](MapCapacity(a.Len())), transform)
}

func AssociateTo[T Element, K comparable, V any](a PrimitiveArray[T], dst *OrderedMap[K, V], transform func(T) (K, V)) *OrderedMap[K, V] {
	for _, v := range a.Data() {
		k, val := transform(v)
		dst.Set(k, val)
	}
	return dst
}

// ===== Grouping =====

// Grouping is a deferred GroupBy: the elements of a source array paired with
// a key selector, consumed by EachCount and the Grouping* aggregations.
type Grouping[T Element, K comparable] struct {
	source      PrimitiveArray[T]
	keySelector func(T) K
}

// GroupingBy prepares a Grouping over a
func GroupingBy[T Element, K comparable](a PrimitiveArray[T], keySelector func(T) K) Grouping[T, K] {
	return Grouping[T, K]{source: a, keySelector: keySelector}
}

// KeyOf returns the key of element v
func (g Grouping[T, K]) KeyOf(v T) K { return g.keySelector(v) }

// EachCount counts the elements of every group
func (g Grouping[T, K]) EachCount() *OrderedMap[K, int] {
	return GroupingFold(g, 0, func(count int, _ T) int { return count + 1 })
}

// GroupingAggregate folds every group with operation. first is true for the
// first element of a group, when acc holds the zero value.
func GroupingAggregate[T Element, K comparable, R any](g Grouping[T, K], operation func(key K, acc R, v T, first bool) R) *OrderedMap[K, R] {
	dst := NewOrderedMap[K, R](0)
	for _, v := range g.source.Data() {
		k := g.keySelector(v)
		acc, seen := dst.Get(k)
		dst.Set(k, operation(k, acc, v, !seen))
	}
	return dst
}

// GroupingFold folds every group starting from initial
func GroupingFold[T Element, K comparable, R any](g Grouping[T, K], initial R, operation func(acc R, v T) R) *OrderedMap[K, R] {
	return GroupingAggregate(g, func(_ K, acc R, v T, first bool) R {
		if first {
			acc = initial
		}
		return operation(acc, v)
	})
}

// GroupingReduce reduces every group starting from its first element
func GroupingReduce[T Element, K comparable](g Grouping[T, K], operation func(key K, acc, v T) T) *OrderedMap[K, T] {
	return GroupingAggregate(g, func(k K, acc T, v T, first bool) T {
		if first {
			return v
		}
		return operation(k, acc, v)
	})
}
