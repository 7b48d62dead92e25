// File: construct.go
// Title: Array Constructors
// Description: Generic and per-kind constructors: zero-filled allocation,
//              index-initialized allocation, literal lists and zero-copy
//              wrapping of an existing buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package primarray

import (
	"fmt"
	"unicode/utf16"
)

// Wrap adopts buffer as an array of its kind without copying. Writes through
// the array are visible in buffer and vice versa.
func Wrap[T Element](buffer []T) PrimitiveArray[T] {
	var wrapped any
	switch b := any(buffer).(type) {
	case []int8:
		wrapped = ByteArray(b)
	case []int16:
		wrapped = ShortArray(b)
	case []int32:
		wrapped = IntArray(b)
	case []int64:
		wrapped = LongArray(b)
	case []float32:
		wrapped = FloatArray(b)
	case []float64:
		wrapped = DoubleArray(b)
	case []bool:
		wrapped = BooleanArray(b)
	case []Char:
		wrapped = CharArray(b)
	default:
		panic(fmt.Sprintf("primarray: unsupported element type %T", buffer))
	}
	return wrapped.(PrimitiveArray[T])
}

// New allocates a zero-filled array of the given size
func New[T Element](size int) PrimitiveArray[T] {
	if size < 0 {
		panic(invalidSize("New", size))
	}
	return Wrap(make([]T, size))
}

// NewWithInit allocates an array whose slot i holds init(i). init runs
// exactly once per slot, in index order.
func NewWithInit[T Element](size int, init func(index int) T) PrimitiveArray[T] {
	if size < 0 {
		panic(invalidSize("NewWithInit", size))
	}
	buffer := make([]T, size)
	for i := range buffer {
		buffer[i] = init(i)
	}
	return Wrap(buffer)
}

// Of builds an array holding values. The variadic slice is adopted as is.
func Of[T Element](values ...T) PrimitiveArray[T] {
	if values == nil {
		values = []T{}
	}
	return Wrap(values)
}

// ToBoxed copies the elements into a slice of interface values, boxing each one.
func ToBoxed[T Element](a PrimitiveArray[T]) []any {
	data := a.Data()
	result := make([]any, len(data))
	for i, v := range data {
		result[i] = v
	}
	return result
}

// ===== Per-kind literals =====

func ByteArrayOf(values ...int8) ByteArray        { return ByteArray(orEmpty(values)) }
func ShortArrayOf(values ...int16) ShortArray     { return ShortArray(orEmpty(values)) }
func IntArrayOf(values ...int32) IntArray         { return IntArray(orEmpty(values)) }
func LongArrayOf(values ...int64) LongArray       { return LongArray(orEmpty(values)) }
func FloatArrayOf(values ...float32) FloatArray   { return FloatArray(orEmpty(values)) }
func DoubleArrayOf(values ...float64) DoubleArray { return DoubleArray(orEmpty(values)) }
func BooleanArrayOf(values ...bool) BooleanArray  { return BooleanArray(orEmpty(values)) }
func CharArrayOf(values ...Char) CharArray        { return CharArray(orEmpty(values)) }

func orEmpty[T Element](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

// CharArrayFromString encodes s as UTF-16 code units
func CharArrayFromString(s string) CharArray {
	units := utf16.Encode([]rune(s))
	result := make(CharArray, len(units))
	for i, u := range units {
		result[i] = Char(u)
	}
	return result
}

// CharsToString decodes UTF-16 code units back into a string
func CharsToString(a PrimitiveArray[Char]) string {
	data := a.Data()
	units := make([]uint16, len(data))
	for i, c := range data {
		units[i] = uint16(c)
	}
	return string(utf16.Decode(units))
}
