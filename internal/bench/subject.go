// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     bench
// Description: Seeded datasets and the primitive/boxed operation pairs
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bench

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/msto63/primarray/foundation/utils/primarray"
)

// subject holds one dataset in two representations: an unboxed primitive
// array and a boxed []any copy. reset restores both from the seed data.
type subject interface {
	kind() primarray.Kind
	reset()
	runPrimitive(op Operation, rng primarray.RandomSource) error
	runBoxed(op Operation, rng primarray.RandomSource)
	verify() error
}

type typedSubject[T primarray.Element] struct {
	base    []T
	work    primarray.PrimitiveArray[T]
	boxed   []any
	compare func(a, b any) int // nil when T has no ordering
}

func newTypedSubject[T primarray.Element](size int, rng *rand.Rand, gen func(*rand.Rand) T, compare func(a, b any) int) *typedSubject[T] {
	base := primarray.NewWithInit(size, func(int) T { return gen(rng) })
	return &typedSubject[T]{
		base:    base.Data(),
		work:    base.CopyOf(),
		boxed:   primarray.ToBoxed(base),
		compare: compare,
	}
}

func compareBoxed[T primarray.Ordered](a, b any) int {
	return cmp.Compare(a.(T), b.(T))
}

// newSubject builds a seeded dataset of kind
func newSubject(kind primarray.Kind, size int, seed uint64) (subject, error) {
	rng := rand.New(rand.NewPCG(seed, uint64(kind)))
	switch kind {
	case primarray.KindByte:
		return newTypedSubject(size, rng, func(r *rand.Rand) int8 { return int8(r.IntN(256) - 128) }, compareBoxed[int8]), nil
	case primarray.KindShort:
		return newTypedSubject(size, rng, func(r *rand.Rand) int16 { return int16(r.IntN(65536) - 32768) }, compareBoxed[int16]), nil
	case primarray.KindInt:
		return newTypedSubject(size, rng, func(r *rand.Rand) int32 { return int32(r.Uint32()) }, compareBoxed[int32]), nil
	case primarray.KindLong:
		return newTypedSubject(size, rng, func(r *rand.Rand) int64 { return int64(r.Uint64()) }, compareBoxed[int64]), nil
	case primarray.KindFloat:
		return newTypedSubject(size, rng, func(r *rand.Rand) float32 { return r.Float32() }, compareBoxed[float32]), nil
	case primarray.KindDouble:
		return newTypedSubject(size, rng, func(r *rand.Rand) float64 { return r.Float64() }, compareBoxed[float64]), nil
	case primarray.KindBoolean:
		return newTypedSubject(size, rng, func(r *rand.Rand) bool { return r.IntN(2) == 1 }, nil), nil
	case primarray.KindChar:
		// stay below the surrogate range so every value is a valid code unit on its own
		return newTypedSubject(size, rng, func(r *rand.Rand) primarray.Char { return primarray.Char(r.IntN(0xD800)) }, compareBoxed[primarray.Char]), nil
	default:
		return nil, fmt.Errorf("bench: unknown kind %v", kind)
	}
}

func (s *typedSubject[T]) kind() primarray.Kind {
	return s.work.Kind()
}

func (s *typedSubject[T]) reset() {
	copy(s.work.Data(), s.base)
	for i, v := range s.base {
		s.boxed[i] = v
	}
}

// runPrimitive applies op to the unboxed array. Contract violations raised by
// the array layer come back as errors.
func (s *typedSubject[T]) runPrimitive(op Operation, rng primarray.RandomSource) error {
	return primarray.Catch(func() {
		switch op {
		case OpReverse:
			primarray.Reverse(s.work)
		case OpSort:
			s.work.Sort()
		case OpShuffle:
			primarray.ShuffleWith(s.work, rng)
		}
	})
}

// runBoxed applies op to the boxed copy the way a generic container would
func (s *typedSubject[T]) runBoxed(op Operation, rng primarray.RandomSource) {
	switch op {
	case OpReverse:
		slices.Reverse(s.boxed)
	case OpSort:
		if s.compare != nil {
			slices.SortFunc(s.boxed, s.compare)
		}
	case OpShuffle:
		for i := len(s.boxed) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			s.boxed[i], s.boxed[j] = s.boxed[j], s.boxed[i]
		}
	}
}

// verify reports the first index where the two representations disagree
func (s *typedSubject[T]) verify() error {
	for i, v := range s.work.All() {
		if any(v) != s.boxed[i] {
			return fmt.Errorf("index %d: primitive %v, boxed %v", i, v, s.boxed[i])
		}
	}
	return nil
}
