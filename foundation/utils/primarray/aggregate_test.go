// File: aggregate_test.go
// Title: Aggregation Operation Tests
// Description: Tests for folds, reductions, running accumulations, numeric
//              summaries, extrema and partitioning.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12

package primarray

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	a := IntArrayOf(1, 2, 3)

	concat := func(acc string, v int32) string { return acc + strconv.Itoa(int(v)) }
	assert.Equal(t, ">123", Fold(a, ">", concat))
	assert.Equal(t, ">", Fold(IntArrayOf(), ">", concat), "empty fold returns the initial value")

	assert.Equal(t, "321<", FoldRight(a, "<", func(v int32, acc string) string {
		return acc[:len(acc)-1] + strconv.Itoa(int(v)) + "<"
	}))

	weighted := FoldIndexed(a, 0, func(i int, acc int, v int32) int { return acc + i*int(v) })
	assert.Equal(t, 8, weighted)

	var order []int
	FoldRightIndexed(a, 0, func(i int, v int32, acc int) int {
		order = append(order, i)
		return acc
	})
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestReduce(t *testing.T) {
	a := IntArrayOf(1, 2, 3, 4)
	minus := func(acc, v int32) int32 { return acc - v }

	got, err := Reduce(a, minus)
	require.NoError(t, err)
	assert.Equal(t, int32(-8), got)

	right, err := ReduceRight(a, func(v, acc int32) int32 { return v - acc })
	require.NoError(t, err)
	assert.Equal(t, int32(1-(2-(3-4))), right)

	var indices []int
	_, err = ReduceIndexed(a, func(i int, acc, v int32) int32 {
		indices = append(indices, i)
		return acc + v
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, indices)

	indices = nil
	_, err = ReduceRightIndexed(a, func(i int, v, acc int32) int32 {
		indices = append(indices, i)
		return acc + v
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, indices)

	single, err := Reduce(IntArrayOf(42), minus)
	require.NoError(t, err)
	assert.Equal(t, int32(42), single)

	t.Run("empty", func(t *testing.T) {
		empty := IntArrayOf()
		_, err := Reduce(empty, minus)
		assert.True(t, errors.Is(err, ErrNoSuchElement))
		_, err = ReduceRight(empty, minus)
		assert.True(t, errors.Is(err, ErrNoSuchElement))
		_, err = ReduceIndexed(empty, func(int, int32, int32) int32 { return 0 })
		assert.True(t, errors.Is(err, ErrNoSuchElement))
		_, err = ReduceRightIndexed(empty, func(int, int32, int32) int32 { return 0 })
		assert.True(t, errors.Is(err, ErrNoSuchElement))

		_, ok := ReduceOrNull(empty, minus)
		assert.False(t, ok)
		_, ok = ReduceRightOrNull(empty, minus)
		assert.False(t, ok)
		_, ok = ReduceIndexedOrNull(empty, func(int, int32, int32) int32 { return 0 })
		assert.False(t, ok)
		_, ok = ReduceRightIndexedOrNull(empty, func(int, int32, int32) int32 { return 0 })
		assert.False(t, ok)
	})
}

func TestRunning(t *testing.T) {
	a := IntArrayOf(1, 2, 3)
	sum := func(acc int64, v int32) int64 { return acc + int64(v) }

	assert.Equal(t, []int64{10, 11, 13, 16}, RunningFold(a, 10, sum))
	assert.Equal(t, []int64{10}, RunningFold(IntArrayOf(), 10, sum))
	assert.Equal(t, RunningFold(a, 0, sum), Scan(a, 0, sum))

	indexed := ScanIndexed(a, 0, func(i int, acc int, _ int32) int { return acc + i })
	assert.Equal(t, []int{0, 0, 1, 3}, indexed)
	assert.Equal(t, indexed, RunningFoldIndexed(a, 0, func(i int, acc int, _ int32) int { return acc + i }))

	assert.Equal(t, []int32{1, 3, 6}, RunningReduce(a, func(acc, v int32) int32 { return acc + v }))
	assert.Empty(t, RunningReduce(IntArrayOf(), func(acc, v int32) int32 { return acc + v }))

	var seen []int
	RunningReduceIndexed(a, func(i int, acc, v int32) int32 {
		seen = append(seen, i)
		return acc
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSumOf(t *testing.T) {
	a := ByteArrayOf(100, 100, 100)

	assert.Equal(t, 300, SumOf(a, func(v int8) int { return int(v) }))
	assert.InDelta(t, 1.5, SumOf(a, func(v int8) float64 { return float64(v) / 200 }), 1e-9)
	assert.Equal(t, int64(0), SumOf(ByteArrayOf(), func(v int8) int64 { return int64(v) }))
}

func TestMaxMinOf(t *testing.T) {
	a := IntArrayOf(3, -7, 5)
	abs := func(v int32) int32 { return max(v, -v) }

	got, err := MaxOf(a, abs)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)

	got, err = MinOf(a, abs)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got)

	name, ok := MaxOfOrNull(a, func(v int32) string { return strconv.Itoa(int(v)) })
	assert.True(t, ok)
	assert.Equal(t, "5", name)

	_, err = MaxOf(IntArrayOf(), abs)
	assert.True(t, errors.Is(err, ErrNoSuchElement))
	_, ok = MinOfOrNull(IntArrayOf(), abs)
	assert.False(t, ok)

	nan, err := MaxOf(DoubleArrayOf(1, math.NaN(), 3), func(v float64) float64 { return v })
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan), "NaN propagates through MaxOf")

	reverse := func(x, y int32) int { return cmp.Compare(y, x) }
	w, err := MaxOfWith(a, reverse, abs)
	require.NoError(t, err)
	assert.Equal(t, int32(3), w)
	w, err = MinOfWith(a, reverse, abs)
	require.NoError(t, err)
	assert.Equal(t, int32(7), w)
	_, err = MinOfWith(IntArrayOf(), reverse, abs)
	assert.Error(t, err)
	_, ok = MaxOfWithOrNull(IntArrayOf(), reverse, abs)
	assert.False(t, ok)
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name    string
		array   DoubleArray
		wantMax float64
		wantMin float64
	}{
		{"mixed", DoubleArrayOf(2.5, -1, 8), 8, -1},
		{"single", DoubleArrayOf(4), 4, 4},
		{"negative", DoubleArrayOf(-3, -2), -2, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mx, err := Max(tt.array)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, mx)
			mn, err := Min(tt.array)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, mn)
		})
	}

	_, err := Max(CharArrayOf())
	assert.True(t, errors.Is(err, ErrNoSuchElement))
	_, err = Min(CharArrayOf())
	assert.True(t, errors.Is(err, ErrNoSuchElement))
	_, ok := MaxOrNull(LongArrayOf())
	assert.False(t, ok)

	c, ok := MinOrNull(CharArrayFromString("kiwi"))
	assert.True(t, ok)
	assert.Equal(t, Char('i'), c)
}

func TestMaxMinBy(t *testing.T) {
	a := IntArrayOf(-4, 3, 4, -3)
	abs := func(v int32) int32 { return max(v, -v) }

	v, ok := MaxByOrNull(a, abs)
	assert.True(t, ok)
	assert.Equal(t, int32(-4), v, "first of equal maxima wins")

	v, ok = MinByOrNull(a, abs)
	assert.True(t, ok)
	assert.Equal(t, int32(3), v, "first of equal minima wins")

	byAbs := func(x, y int32) int { return cmp.Compare(abs(x), abs(y)) }
	v, ok = MaxWithOrNull(a, byAbs)
	assert.True(t, ok)
	assert.Equal(t, int32(-4), v)
	v, ok = MinWithOrNull(a, byAbs)
	assert.True(t, ok)
	assert.Equal(t, int32(3), v)

	_, ok = MaxByOrNull(IntArrayOf(), abs)
	assert.False(t, ok)
	_, ok = MinWithOrNull(IntArrayOf(), byAbs)
	assert.False(t, ok)
}

func TestPartition(t *testing.T) {
	matched, rest := Partition(IntArrayOf(1, 2, 3, 4, 5), isEven)
	assert.Equal(t, []int32{2, 4}, matched)
	assert.Equal(t, []int32{1, 3, 5}, rest)

	matched, rest = Partition(IntArrayOf(), isEven)
	assert.Empty(t, matched)
	assert.Empty(t, rest)
}
