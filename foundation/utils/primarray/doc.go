// Package primarray implements one abstraction over arrays of primitive values
// and a large set of functional operations written once for all element kinds.
//
// Package: primarray
// Title: Unboxed Primitive Arrays with Generic Operations
// Description: This package wraps native Go buffers of the eight primitive
// kinds (int8, int16, int32, int64, float32, float64, bool and the
// 16-bit Char) behind the PrimitiveArray contract, and implements
// search, transform, aggregation, grouping, set, ordering, zip and
// join operations as generic functions over that contract. Elements
// are never boxed: every operation loops over the native buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-20
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Wrappers
//
// Seven ordered kinds share one generic named slice type:
//   - ByteArray, ShortArray, IntArray, LongArray: OrderedArray of int8..int64
//   - FloatArray, DoubleArray: OrderedArray of float32 and float64
//   - CharArray: OrderedArray of Char (UTF-16 code unit)
//
// BooleanArray is a separate type because booleans cannot be sorted; its Sort
// panics with CodeUnsupportedOperation. A wrapper is its buffer, so converting
// a slice with IntArray(buf) or Wrap(buf) is free and shares storage.
//
// # Operation Families
//
//   - Search: Contains, IndexOf, First, Last, Single, Find, Any, All, Count
//   - Transform: Map, Filter, FlatMap, Distinct, Drop, Take, Slice, Reversed
//   - Aggregation: Fold, Reduce, RunningFold, SumOf, MaxOf, Max, Partition
//   - Grouping: GroupBy, AssociateBy, Associate, GroupingBy
//   - Sets: ToSet, Union, Intersect, Subtract
//   - Ordering: Sorted, SortedBy, SortedWith, Reverse, Shuffle, SortDescending
//   - Zip and join: Zip, ZipWith, JoinToString, JoinTo
//
// Operations that can mutate (Set, Fill, Sort, Reverse, Shuffle,
// SortDescending) work in place. Everything else returns a fresh result and
// leaves its input untouched.
//
// # Failures
//
// Contract violations panic with a *error.Error from the core error package:
// indices outside [0, Len()) and ranges outside [0, Len()] carry
// CodeIndexOutOfBounds, a range with from > to carries CodeInvalidRange,
// negative sizes and counts carry CodeInvalidArgument and sorting a boolean
// array carries CodeUnsupportedOperation. No element is written before a check
// fails. Catch converts such a panic into an error.
//
// Lookups that may legitimately find nothing come in two forms. Strict
// variants (First, Single, Reduce, Max, ...) return an error with
// CodeNoSuchElement or CodeMoreThanOneElement; the OrNull variants return a
// comma-ok pair instead.
//
// Usage Examples:
//
//	a := primarray.IntArrayOf(5, 3, 1, 4, 2)
//	a.Sort()                          // [1, 2, 3, 4, 5]
//	primarray.Reverse[int32](a)       // [5, 4, 3, 2, 1]
//
//	evens := primarray.Filter[int32](a, func(v int32) bool { return v%2 == 0 })
//
//	groups := primarray.GroupBy(primarray.IntArrayOf(1, 2, 3, 4, 5, 6),
//		func(v int32) int32 { return v % 3 })
//	// keys in first-seen order: 1, 2, 0
//
// Concurrency:
//
// Nothing here blocks or synchronizes. Concurrent mutation of one array is a
// data race, as with any Go slice.
package primarray
