// File: aggregate.go
// Title: Aggregation Operations
// Description: Folds, reductions, running accumulations, numeric summaries,
//              extrema and partitioning.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package primarray

import (
	"cmp"
)

// ===== Fold =====

// Fold accumulates left to right starting from initial. Empty arrays return
// initial.
func Fold[T Element, R any](a PrimitiveArray[T], initial R, operation func(acc R, v T) R) R {
	acc := initial
	for _, v := range a.Data() {
		acc = operation(acc, v)
	}
	return acc
}

func FoldIndexed[T Element, R any](a PrimitiveArray[T], initial R, operation func(index int, acc R, v T) R) R {
	acc := initial
	for i, v := range a.Data() {
		acc = operation(i, acc, v)
	}
	return acc
}

// FoldRight accumulates right to left starting from initial
func FoldRight[T Element, R any](a PrimitiveArray[T], initial R, operation func(v T, acc R) R) R {
	data := a.Data()
	acc := initial
	for i := len(data) - 1; i >= 0; i-- {
		acc = operation(data[i], acc)
	}
	return acc
}

func FoldRightIndexed[T Element, R any](a PrimitiveArray[T], initial R, operation func(index int, v T, acc R) R) R {
	data := a.Data()
	acc := initial
	for i := len(data) - 1; i >= 0; i-- {
		acc = operation(i, data[i], acc)
	}
	return acc
}

// ===== Reduce =====

// Reduce accumulates left to right starting from the first element. Empty
// arrays yield CodeNoSuchElement.
func Reduce[T Element](a PrimitiveArray[T], operation func(acc, v T) T) (T, error) {
	if r, ok := ReduceOrNull(a, operation); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("Reduce", msgEmptyReduce)
}

// ReduceIndexed passes the index of the element being folded in, starting at 1
func ReduceIndexed[T Element](a PrimitiveArray[T], operation func(index int, acc, v T) T) (T, error) {
	if r, ok := ReduceIndexedOrNull(a, operation); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("ReduceIndexed", msgEmptyReduce)
}

func ReduceOrNull[T Element](a PrimitiveArray[T], operation func(acc, v T) T) (T, bool) {
	return ReduceIndexedOrNull(a, func(_ int, acc, v T) T { return operation(acc, v) })
}

func ReduceIndexedOrNull[T Element](a PrimitiveArray[T], operation func(index int, acc, v T) T) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	acc := data[0]
	for i := 1; i < len(data); i++ {
		acc = operation(i, acc, data[i])
	}
	return acc, true
}

// ReduceRight accumulates right to left starting from the last element
func ReduceRight[T Element](a PrimitiveArray[T], operation func(v, acc T) T) (T, error) {
	if r, ok := ReduceRightOrNull(a, operation); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("ReduceRight", msgEmptyReduce)
}

func ReduceRightIndexed[T Element](a PrimitiveArray[T], operation func(index int, v, acc T) T) (T, error) {
	if r, ok := ReduceRightIndexedOrNull(a, operation); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("ReduceRightIndexed", msgEmptyReduce)
}

func ReduceRightOrNull[T Element](a PrimitiveArray[T], operation func(v, acc T) T) (T, bool) {
	return ReduceRightIndexedOrNull(a, func(_ int, v, acc T) T { return operation(v, acc) })
}

func ReduceRightIndexedOrNull[T Element](a PrimitiveArray[T], operation func(index int, v, acc T) T) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	acc := data[len(data)-1]
	for i := len(data) - 2; i >= 0; i-- {
		acc = operation(i, data[i], acc)
	}
	return acc, true
}

// ===== Running accumulations =====

// RunningFold returns every intermediate accumulator, initial included, so the
// result has Len()+1 entries.
func RunningFold[T Element, R any](a PrimitiveArray[T], initial R, operation func(acc R, v T) R) []R {
	return RunningFoldIndexed(a, initial, func(_ int, acc R, v T) R { return operation(acc, v) })
}

func RunningFoldIndexed[T Element, R any](a PrimitiveArray[T], initial R, operation func(index int, acc R, v T) R) []R {
	data := a.Data()
	result := make([]R, 0, len(data)+1)
	acc := initial
	result = append(result, acc)
	for i, v := range data {
		acc = operation(i, acc, v)
		result = append(result, acc)
	}
	return result
}

// Scan is RunningFold
func Scan[T Element, R any](a PrimitiveArray[T], initial R, operation func(acc R, v T) R) []R {
	return RunningFold(a, initial, operation)
}

// ScanIndexed is RunningFoldIndexed
func ScanIndexed[T Element, R any](a PrimitiveArray[T], initial R, operation func(index int, acc R, v T) R) []R {
	return RunningFoldIndexed(a, initial, operation)
}

// RunningReduce returns every intermediate accumulator of Reduce. Empty arrays
// give an empty result.
func RunningReduce[T Element](a PrimitiveArray[T], operation func(acc, v T) T) []T {
	return RunningReduceIndexed(a, func(_ int, acc, v T) T { return operation(acc, v) })
}

func RunningReduceIndexed[T Element](a PrimitiveArray[T], operation func(index int, acc, v T) T) []T {
	data := a.Data()
	result := make([]T, 0, len(data))
	if len(data) == 0 {
		return result
	}
	acc := data[0]
	result = append(result, acc)
	for i := 1; i < len(data); i++ {
		acc = operation(i, acc, data[i])
		result = append(result, acc)
	}
	return result
}

// ===== Numeric summaries =====

// SumOf adds up selector over all elements
func SumOf[T Element, R Number](a PrimitiveArray[T], selector func(T) R) R {
	var sum R
	for _, v := range a.Data() {
		sum += selector(v)
	}
	return sum
}

// MaxOf returns the largest selector result. Float NaN results propagate.
func MaxOf[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (R, error) {
	if r, ok := MaxOfOrNull(a, selector); ok {
		return r, nil
	}
	var zero R
	return zero, noSuchElement("MaxOf", msgEmpty)
}

func MaxOfOrNull[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (R, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero R
		return zero, false
	}
	result := selector(data[0])
	for _, v := range data[1:] {
		result = max(result, selector(v))
	}
	return result, true
}

// MinOf returns the smallest selector result. Float NaN results propagate.
func MinOf[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (R, error) {
	if r, ok := MinOfOrNull(a, selector); ok {
		return r, nil
	}
	var zero R
	return zero, noSuchElement("MinOf", msgEmpty)
}

func MinOfOrNull[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (R, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero R
		return zero, false
	}
	result := selector(data[0])
	for _, v := range data[1:] {
		result = min(result, selector(v))
	}
	return result, true
}

// MaxOfWith returns the largest selector result under comparator
func MaxOfWith[T Element, R any](a PrimitiveArray[T], comparator func(x, y R) int, selector func(T) R) (R, error) {
	if r, ok := MaxOfWithOrNull(a, comparator, selector); ok {
		return r, nil
	}
	var zero R
	return zero, noSuchElement("MaxOfWith", msgEmpty)
}

func MaxOfWithOrNull[T Element, R any](a PrimitiveArray[T], comparator func(x, y R) int, selector func(T) R) (R, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero R
		return zero, false
	}
	result := selector(data[0])
	for _, v := range data[1:] {
		if r := selector(v); comparator(result, r) < 0 {
			result = r
		}
	}
	return result, true
}

func MinOfWith[T Element, R any](a PrimitiveArray[T], comparator func(x, y R) int, selector func(T) R) (R, error) {
	if r, ok := MinOfWithOrNull(a, comparator, selector); ok {
		return r, nil
	}
	var zero R
	return zero, noSuchElement("MinOfWith", msgEmpty)
}

func MinOfWithOrNull[T Element, R any](a PrimitiveArray[T], comparator func(x, y R) int, selector func(T) R) (R, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero R
		return zero, false
	}
	result := selector(data[0])
	for _, v := range data[1:] {
		if r := selector(v); comparator(result, r) > 0 {
			result = r
		}
	}
	return result, true
}

// ===== Extrema =====

// Max returns the largest element. Boolean arrays are rejected at compile
// time; float NaNs propagate.
func Max[T Ordered](a PrimitiveArray[T]) (T, error) {
	if r, ok := MaxOrNull(a); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("Max", msgEmpty)
}

func MaxOrNull[T Ordered](a PrimitiveArray[T]) (T, bool) {
	return MaxOfOrNull(a, identity[T])
}

func Min[T Ordered](a PrimitiveArray[T]) (T, error) {
	if r, ok := MinOrNull(a); ok {
		return r, nil
	}
	var zero T
	return zero, noSuchElement("Min", msgEmpty)
}

func MinOrNull[T Ordered](a PrimitiveArray[T]) (T, bool) {
	return MinOfOrNull(a, identity[T])
}

// MaxByOrNull returns the first element with the largest selector key
func MaxByOrNull[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	best, bestKey := data[0], selector(data[0])
	for _, v := range data[1:] {
		if k := selector(v); cmp.Less(bestKey, k) {
			best, bestKey = v, k
		}
	}
	return best, true
}

// MinByOrNull returns the first element with the smallest selector key
func MinByOrNull[T Element, R cmp.Ordered](a PrimitiveArray[T], selector func(T) R) (T, bool) {
	data := a.Data()
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	best, bestKey := data[0], selector(data[0])
	for _, v := range data[1:] {
		if k := selector(v); cmp.Less(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return best, true
}

// MaxWithOrNull returns the first greatest element under comparator
func MaxWithOrNull[T Element](a PrimitiveArray[T], comparator func(x, y T) int) (T, bool) {
	return MaxOfWithOrNull(a, comparator, identity[T])
}

func MinWithOrNull[T Element](a PrimitiveArray[T], comparator func(x, y T) int) (T, bool) {
	return MinOfWithOrNull(a, comparator, identity[T])
}

// Partition splits the elements into those satisfying predicate and the rest
func Partition[T Element](a PrimitiveArray[T], predicate func(T) bool) (matched, rest []T) {
	matched, rest = make([]T, 0), make([]T, 0)
	for _, v := range a.Data() {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

func identity[T any](v T) T { return v }
