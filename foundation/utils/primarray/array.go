// File: array.go
// Title: Primitive Array Wrappers
// Description: Defines the PrimitiveArray contract and its two implementations:
//              the generic OrderedArray behind the seven ordered kinds and
//              BooleanArray. Both are named slice types, so a wrapper is exactly
//              its native buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-24
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.0: Added Values/All sequence views and Equal
// - 2025-02-24 v0.1.0: Floats sort in total order with NaN last

package primarray

import (
	"cmp"
	"iter"
	"math"
	"slices"
)

// PrimitiveArray is the contract shared by all eight element kinds. The
// generic operations of this package are written once against it.
type PrimitiveArray[T Element] interface {
	// Get returns the element at index. Out-of-range indices panic.
	Get(index int) T
	// Set replaces the element at index. Out-of-range indices panic.
	Set(index int, value T)
	Len() int
	IsEmpty() bool
	Kind() Kind

	// Data exposes the backing buffer without copying.
	Data() []T

	CopyOf() PrimitiveArray[T]
	// CopyOfSize returns a copy truncated or zero-padded to newSize.
	CopyOfSize(newSize int) PrimitiveArray[T]
	// CopyOfRange returns a copy of [from, to).
	CopyOfRange(from, to int) PrimitiveArray[T]

	Fill(value T)
	FillRange(value T, from, to int)

	Plus(value T) PrimitiveArray[T]
	PlusSlice(values []T) PrimitiveArray[T]
	PlusArray(other PrimitiveArray[T]) PrimitiveArray[T]

	// Sort sorts ascending in place. Boolean arrays panic with
	// CodeUnsupportedOperation.
	Sort()
	SortRange(from, to int)

	// NewArray allocates a zero-filled array of the same kind.
	NewArray(size int) PrimitiveArray[T]

	// ToSlice returns an independent copy of the elements.
	ToSlice() []T
	Values() iter.Seq[T]
	All() iter.Seq2[int, T]

	Equal(other PrimitiveArray[T]) bool
	String() string
}

// OrderedArray wraps a buffer of one of the seven ordered kinds.
type OrderedArray[T Ordered] []T

// Per-kind names for the ordered wrappers.
type (
	ByteArray   = OrderedArray[int8]
	ShortArray  = OrderedArray[int16]
	IntArray    = OrderedArray[int32]
	LongArray   = OrderedArray[int64]
	FloatArray  = OrderedArray[float32]
	DoubleArray = OrderedArray[float64]
	CharArray   = OrderedArray[Char]
)

// BooleanArray wraps a buffer of booleans. It cannot be sorted.
type BooleanArray []bool

var (
	_ PrimitiveArray[int32] = IntArray(nil)
	_ PrimitiveArray[Char]  = CharArray(nil)
	_ PrimitiveArray[bool]  = BooleanArray(nil)
)

// ===== Shared buffer helpers =====

func copyOfSize[T Element](op string, data []T, newSize int) []T {
	if newSize < 0 {
		panic(invalidSize(op, newSize))
	}
	result := make([]T, newSize)
	copy(result, data)
	return result
}

func copyOfRange[T Element](data []T, from, to int) []T {
	checkRange("CopyOfRange", from, to, len(data))
	result := make([]T, to-from)
	copy(result, data[from:to])
	return result
}

func concat[T Element](data, extra []T) []T {
	result := make([]T, len(data)+len(extra))
	copy(result, data)
	copy(result[len(data):], extra)
	return result
}

func fillRange[T Element](data []T, value T, from, to int) {
	checkRange("FillRange", from, to, len(data))
	for i := from; i < to; i++ {
		data[i] = value
	}
}

func equalData[T Element](data []T, other PrimitiveArray[T]) bool {
	return slices.Equal(data, dataOf(other))
}

// dataOf returns the buffer of a, treating a nil interface as empty
func dataOf[T Element](a PrimitiveArray[T]) []T {
	if a == nil {
		return nil
	}
	return a.Data()
}

// ===== OrderedArray =====

func (a OrderedArray[T]) Get(index int) T {
	checkIndex("Get", index, len(a))
	return a[index]
}

func (a OrderedArray[T]) Set(index int, value T) {
	checkIndex("Set", index, len(a))
	a[index] = value
}

func (a OrderedArray[T]) Len() int      { return len(a) }
func (a OrderedArray[T]) IsEmpty() bool { return len(a) == 0 }
func (a OrderedArray[T]) Kind() Kind    { return KindOf[T]() }
func (a OrderedArray[T]) Data() []T     { return a }

func (a OrderedArray[T]) CopyOf() PrimitiveArray[T] {
	return OrderedArray[T](slices.Clone([]T(a)))
}

func (a OrderedArray[T]) CopyOfSize(newSize int) PrimitiveArray[T] {
	return OrderedArray[T](copyOfSize("CopyOfSize", a, newSize))
}

func (a OrderedArray[T]) CopyOfRange(from, to int) PrimitiveArray[T] {
	return OrderedArray[T](copyOfRange(a, from, to))
}

func (a OrderedArray[T]) Fill(value T) {
	for i := range a {
		a[i] = value
	}
}

func (a OrderedArray[T]) FillRange(value T, from, to int) {
	fillRange(a, value, from, to)
}

func (a OrderedArray[T]) Plus(value T) PrimitiveArray[T] {
	return OrderedArray[T](concat(a, []T{value}))
}

func (a OrderedArray[T]) PlusSlice(values []T) PrimitiveArray[T] {
	return OrderedArray[T](concat(a, values))
}

// PlusArray appends the elements of other. A nil other appends nothing.
func (a OrderedArray[T]) PlusArray(other PrimitiveArray[T]) PrimitiveArray[T] {
	return OrderedArray[T](concat(a, dataOf(other)))
}

// Sort orders the elements ascending. Floats use the total order
// -Inf < ... < -0.0 < 0.0 < ... < +Inf < NaN.
func (a OrderedArray[T]) Sort() {
	sortOrdered([]T(a))
}

func (a OrderedArray[T]) SortRange(from, to int) {
	checkRange("SortRange", from, to, len(a))
	sortOrdered([]T(a[from:to]))
}

func sortOrdered[T Ordered](data []T) {
	switch KindOf[T]() {
	case KindFloat, KindDouble:
		slices.SortFunc(data, compareTotal[T])
	default:
		slices.Sort(data)
	}
}

// compareTotal orders NaN after every number and -0.0 before 0.0
func compareTotal[T Ordered](x, y T) int {
	xNaN, yNaN := math.IsNaN(float64(x)), math.IsNaN(float64(y))
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}
	if c := cmp.Compare(x, y); c != 0 || x != 0 {
		return c
	}
	xNeg, yNeg := math.Signbit(float64(x)), math.Signbit(float64(y))
	switch {
	case xNeg == yNeg:
		return 0
	case xNeg:
		return -1
	default:
		return 1
	}
}

func (a OrderedArray[T]) NewArray(size int) PrimitiveArray[T] {
	if size < 0 {
		panic(invalidSize("NewArray", size))
	}
	return make(OrderedArray[T], size)
}

func (a OrderedArray[T]) ToSlice() []T                       { return slices.Clone([]T(a)) }
func (a OrderedArray[T]) Values() iter.Seq[T]                { return slices.Values(a) }
func (a OrderedArray[T]) All() iter.Seq2[int, T]             { return slices.All(a) }
func (a OrderedArray[T]) Equal(other PrimitiveArray[T]) bool { return equalData(a, other) }

// String renders the array as "[a, b, c]"
func (a OrderedArray[T]) String() string {
	return JoinToString[T](a, WithPrefix("["), WithPostfix("]"))
}

// ===== BooleanArray =====

func (a BooleanArray) Get(index int) bool {
	checkIndex("Get", index, len(a))
	return a[index]
}

func (a BooleanArray) Set(index int, value bool) {
	checkIndex("Set", index, len(a))
	a[index] = value
}

func (a BooleanArray) Len() int      { return len(a) }
func (a BooleanArray) IsEmpty() bool { return len(a) == 0 }
func (a BooleanArray) Kind() Kind    { return KindBoolean }
func (a BooleanArray) Data() []bool  { return a }

func (a BooleanArray) CopyOf() PrimitiveArray[bool] {
	return BooleanArray(slices.Clone([]bool(a)))
}

func (a BooleanArray) CopyOfSize(newSize int) PrimitiveArray[bool] {
	return BooleanArray(copyOfSize("CopyOfSize", a, newSize))
}

func (a BooleanArray) CopyOfRange(from, to int) PrimitiveArray[bool] {
	return BooleanArray(copyOfRange(a, from, to))
}

func (a BooleanArray) Fill(value bool) {
	for i := range a {
		a[i] = value
	}
}

func (a BooleanArray) FillRange(value bool, from, to int) {
	fillRange(a, value, from, to)
}

func (a BooleanArray) Plus(value bool) PrimitiveArray[bool] {
	return BooleanArray(concat(a, []bool{value}))
}

func (a BooleanArray) PlusSlice(values []bool) PrimitiveArray[bool] {
	return BooleanArray(concat(a, values))
}

func (a BooleanArray) PlusArray(other PrimitiveArray[bool]) PrimitiveArray[bool] {
	return BooleanArray(concat(a, dataOf(other)))
}

// Sort always panics: booleans have no ordering here.
func (a BooleanArray) Sort() {
	panic(unsupportedSort("Sort", KindBoolean))
}

func (a BooleanArray) SortRange(from, to int) {
	panic(unsupportedSort("SortRange", KindBoolean))
}

func (a BooleanArray) NewArray(size int) PrimitiveArray[bool] {
	if size < 0 {
		panic(invalidSize("NewArray", size))
	}
	return make(BooleanArray, size)
}

func (a BooleanArray) ToSlice() []bool                       { return slices.Clone([]bool(a)) }
func (a BooleanArray) Values() iter.Seq[bool]                { return slices.Values(a) }
func (a BooleanArray) All() iter.Seq2[int, bool]             { return slices.All(a) }
func (a BooleanArray) Equal(other PrimitiveArray[bool]) bool { return equalData(a, other) }
func (a BooleanArray) String() string {
	return JoinToString[bool](a, WithPrefix("["), WithPostfix("]"))
}
