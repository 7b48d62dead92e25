// File: array_test.go
// Title: Primitive Array Wrapper Tests
// Description: Tests for the wrapper contract across element kinds:
//              indexed access, copies, fills, concatenation, sorting and the
//              structured failures of contract violations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-18

package primarray

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perror "github.com/msto63/primarray/foundation/core/error"
)

// requireCode runs fn and asserts it panics with a structured error of code
func requireCode(t *testing.T, code perror.Code, fn func()) {
	t.Helper()
	err := Catch(fn)
	require.Error(t, err, "expected a %s failure", code)
	assert.Equal(t, code, perror.GetCode(err))
}

func TestGetSet(t *testing.T) {
	a := IntArrayOf(1, 2, 3)

	a.Set(1, 20)
	assert.Equal(t, int32(20), a.Get(1))
	assert.Equal(t, 3, a.Len())

	for _, idx := range []int{-1, 3, 100} {
		requireCode(t, perror.CodeIndexOutOfBounds, func() { a.Get(idx) })
		requireCode(t, perror.CodeIndexOutOfBounds, func() { a.Set(idx, 0) })
	}
	assert.Equal(t, []int32{1, 20, 3}, a.Data(), "failed Set must not write")
}

func TestWrapSharesBuffer(t *testing.T) {
	buf := []float64{1.5, 2.5}
	a := Wrap(buf)

	a.Set(0, 9)
	assert.Equal(t, 9.0, buf[0])
	buf[1] = 7
	assert.Equal(t, 7.0, a.Get(1))
	assert.Equal(t, KindDouble, a.Kind())
}

func TestConstructors(t *testing.T) {
	t.Run("New zero fills", func(t *testing.T) {
		assert.Equal(t, []int64{0, 0, 0}, New[int64](3).Data())
		assert.Equal(t, []bool{false, false}, New[bool](2).Data())
		assert.Equal(t, []Char{0}, New[Char](1).Data())
		requireCode(t, perror.CodeInvalidArgument, func() { New[int8](-1) })
	})

	t.Run("NewWithInit calls init once per slot in order", func(t *testing.T) {
		var calls []int
		a := NewWithInit(4, func(i int) int16 {
			calls = append(calls, i)
			return int16(i * i)
		})
		assert.Equal(t, []int16{0, 1, 4, 9}, a.Data())
		assert.Equal(t, []int{0, 1, 2, 3}, calls)
	})

	t.Run("Of", func(t *testing.T) {
		a := Of[float32](1, 2)
		assert.Equal(t, KindFloat, a.Kind())
		assert.Equal(t, 2, a.Len())
		assert.True(t, Of[bool]().IsEmpty())
	})

	t.Run("kinds", func(t *testing.T) {
		tests := []struct {
			name string
			kind Kind
			want Kind
		}{
			{"byte", ByteArrayOf(1).Kind(), KindByte},
			{"short", ShortArrayOf(1).Kind(), KindShort},
			{"int", IntArrayOf(1).Kind(), KindInt},
			{"long", LongArrayOf(1).Kind(), KindLong},
			{"float", FloatArrayOf(1).Kind(), KindFloat},
			{"double", DoubleArrayOf(1).Kind(), KindDouble},
			{"boolean", BooleanArrayOf(true).Kind(), KindBoolean},
			{"char", CharArrayOf('a').Kind(), KindChar},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.kind)
			})
		}
	})
}

func TestCopyOf(t *testing.T) {
	a := IntArrayOf(1, 2, 3)

	c := a.CopyOf()
	c.Set(0, 99)
	assert.Equal(t, int32(1), a.Get(0), "copy must not alias the source")

	assert.Equal(t, []int32{1, 2, 3, 0, 0}, a.CopyOfSize(5).Data())
	assert.Equal(t, []int32{1}, a.CopyOfSize(1).Data())
	assert.Empty(t, a.CopyOfSize(0).Data())
	requireCode(t, perror.CodeInvalidArgument, func() { a.CopyOfSize(-1) })
}

func TestCopyOfRange(t *testing.T) {
	a := CharArrayFromString("hello")

	assert.Equal(t, "ell", CharsToString(a.CopyOfRange(1, 4)))
	assert.Equal(t, 0, a.CopyOfRange(2, 2).Len())
	assert.Equal(t, "hello", CharsToString(a.CopyOfRange(0, 5)))

	requireCode(t, perror.CodeInvalidRange, func() { a.CopyOfRange(3, 1) })
	requireCode(t, perror.CodeIndexOutOfBounds, func() { a.CopyOfRange(0, 6) })
	requireCode(t, perror.CodeIndexOutOfBounds, func() { a.CopyOfRange(-1, 2) })
}

func TestFill(t *testing.T) {
	a := New[bool](5)
	a.FillRange(true, 1, 3)
	assert.Equal(t, []bool{false, true, true, false, false}, a.Data())

	a.Fill(true)
	assert.True(t, All(a, func(v bool) bool { return v }))

	b := IntArrayOf(1, 2, 3)
	requireCode(t, perror.CodeIndexOutOfBounds, func() { b.FillRange(0, 1, 4) })
	requireCode(t, perror.CodeInvalidRange, func() { b.FillRange(0, 2, 1) })
	assert.Equal(t, []int32{1, 2, 3}, b.Data(), "failed FillRange must not write")
}

func TestPlus(t *testing.T) {
	a := LongArrayOf(1, 2)

	assert.Equal(t, []int64{1, 2, 3}, a.Plus(3).Data())
	assert.Equal(t, []int64{1, 2, 3, 4}, a.PlusSlice([]int64{3, 4}).Data())
	assert.Equal(t, []int64{1, 2, 1, 2}, a.PlusArray(a).Data())
	assert.Equal(t, []int64{1, 2}, a.Data(), "source must be unchanged")

	assert.Equal(t, []int64{1, 2}, a.PlusArray(nil).Data())
	assert.Equal(t, []bool{true}, BooleanArrayOf(true).PlusArray(nil).Data())
}

func TestSort(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		a := IntArrayOf(5, 3, 1, 4, 2)
		a.Sort()
		assert.Equal(t, []int32{1, 2, 3, 4, 5}, a.Data())
	})

	t.Run("range", func(t *testing.T) {
		a := ByteArrayOf(9, 5, 3, 1, 0)
		a.SortRange(1, 4)
		assert.Equal(t, []int8{9, 1, 3, 5, 0}, a.Data())
		requireCode(t, perror.CodeIndexOutOfBounds, func() { a.SortRange(0, 6) })
	})

	t.Run("floats use a total order", func(t *testing.T) {
		negZero := math.Copysign(0, -1)

		d := DoubleArrayOf(2, math.NaN(), 0, negZero, 1)
		d.Sort()
		assert.Equal(t, "[-0.0, 0.0, 1.0, 2.0, NaN]", d.String())

		inf := DoubleArrayOf(math.Inf(1), math.NaN(), math.Inf(-1), math.NaN())
		inf.Sort()
		assert.Equal(t, "[-Infinity, Infinity, NaN, NaN]", inf.String())

		f := FloatArrayOf(float32(math.NaN()), -1, float32(negZero), 0)
		f.Sort()
		assert.Equal(t, "[-1.0, -0.0, 0.0, NaN]", f.String())

		r := DoubleArrayOf(math.NaN(), 3, math.NaN(), 0, negZero, 9)
		r.SortRange(1, 5)
		assert.Equal(t, "[NaN, -0.0, 0.0, 3.0, NaN, 9.0]", r.String())
	})

	t.Run("chars sort by code unit", func(t *testing.T) {
		a := CharArrayFromString("dcba")
		a.Sort()
		assert.Equal(t, "abcd", CharsToString(a))
	})

	t.Run("boolean is unsupported", func(t *testing.T) {
		a := BooleanArrayOf(true, false)
		requireCode(t, perror.CodeUnsupportedOperation, a.Sort)
		requireCode(t, perror.CodeUnsupportedOperation, func() { a.SortRange(0, 1) })
		assert.Equal(t, []bool{true, false}, a.Data())

		err := Catch(a.Sort)
		assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	})
}

func TestNewArray(t *testing.T) {
	var a PrimitiveArray[float32] = FloatArrayOf(1, 2)
	b := a.NewArray(3)
	assert.Equal(t, KindFloat, b.Kind())
	assert.Equal(t, []float32{0, 0, 0}, b.Data())

	requireCode(t, perror.CodeInvalidArgument, func() { BooleanArrayOf().NewArray(-2) })
}

func TestSequenceViews(t *testing.T) {
	a := ShortArrayOf(3, 1, 2)

	assert.Equal(t, []int16{3, 1, 2}, slices.Collect(a.Values()))

	var idx []int
	for i, v := range a.All() {
		idx = append(idx, i)
		assert.Equal(t, a.Get(i), v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	s := a.ToSlice()
	s[0] = 100
	assert.Equal(t, int16(3), a.Get(0), "ToSlice must copy")

	boxed := ToBoxed[int16](a)
	assert.Equal(t, []any{int16(3), int16(1), int16(2)}, boxed)
}

func TestStringAndEqual(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", IntArrayOf(1, 2, 3).String())
	assert.Equal(t, "[]", IntArrayOf().String())
	assert.Equal(t, "[true, false]", BooleanArrayOf(true, false).String())
	assert.Equal(t, "[a, b]", CharArrayOf('a', 'b').String())
	assert.Equal(t, "[1.5, -0.25]", DoubleArrayOf(1.5, -0.25).String())

	assert.True(t, IntArrayOf(1, 2).Equal(IntArrayOf(1, 2)))
	assert.False(t, IntArrayOf(1, 2).Equal(IntArrayOf(2, 1)))
	assert.False(t, DoubleArrayOf(math.NaN()).Equal(DoubleArrayOf(math.NaN())))
}

func TestCharConversions(t *testing.T) {
	a := CharArrayFromString("h€llo")
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, Char(0x20AC), a.Get(1))
	assert.Equal(t, "h€llo", CharsToString(a))

	// a supplementary character becomes a surrogate pair
	assert.Equal(t, 2, CharArrayFromString("😀").Len())
}

func TestKind(t *testing.T) {
	assert.Len(t, AllKinds(), 8)
	assert.Equal(t, 64, KindLong.Bits())
	assert.False(t, KindBoolean.Sortable())
	assert.True(t, KindChar.Sortable())

	k, ok := ParseKind("double")
	assert.True(t, ok)
	assert.Equal(t, KindDouble, k)
	k, ok = ParseKind(" CHAR ")
	assert.True(t, ok)
	assert.Equal(t, KindChar, k)
	_, ok = ParseKind("quad")
	assert.False(t, ok)
}

func TestCatch(t *testing.T) {
	assert.NoError(t, Catch(func() {}))
	assert.Panics(t, func() {
		_ = Catch(func() { panic("not a structured failure") })
	})
}
