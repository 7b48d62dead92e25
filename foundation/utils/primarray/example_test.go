// File: example_test.go
// Title: Primitive Array Examples
// Description: Runnable examples for the wrappers and the generic operations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-20
//
// Change History:
// - 2025-02-14 v0.1.0: Initial example implementation

package primarray

import (
	"fmt"
	"math/rand/v2"
)

// ===============================
// Wrapper Examples
// ===============================

func ExampleIntArrayOf() {
	a := IntArrayOf(5, 3, 1, 4, 2)

	a.Sort()
	fmt.Println(a)

	SortDescending(a)
	fmt.Println(a)

	Reverse(a)
	fmt.Println(a)
	// Output:
	// [1, 2, 3, 4, 5]
	// [5, 4, 3, 2, 1]
	// [1, 2, 3, 4, 5]
}

func ExampleWrap() {
	buffer := []int64{1, 2, 3}
	a := Wrap(buffer)

	a.Set(0, 100)
	fmt.Println(buffer[0], a.Kind())
	// Output: 100 Long
}

func ExampleCatch() {
	a := BooleanArrayOf(true, false)

	err := Catch(a.Sort)
	fmt.Println(err)
	// Output: Boolean arrays have no ordering to sort by
}

// ===============================
// Operation Examples
// ===============================

func ExampleFilter() {
	a := IntArrayOf(1, 2, 3, 4, 5, 6)

	evens := Filter(a, func(v int32) bool { return v%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4 6]
}

func ExampleGroupBy() {
	a := IntArrayOf(1, 2, 3, 4, 5, 6)

	groups := GroupBy(a, func(v int32) int32 { return v % 3 })
	for key, group := range groups.All() {
		fmt.Println(key, group)
	}
	// Output:
	// 1 [1 4]
	// 2 [2 5]
	// 0 [3 6]
}

func ExampleReduce() {
	_, err := Reduce(IntArrayOf(), func(acc, v int32) int32 { return acc + v })
	fmt.Println(err)

	sum, _ := Reduce(IntArrayOf(1, 2, 3), func(acc, v int32) int32 { return acc + v })
	fmt.Println(sum)
	// Output:
	// Empty array can't be reduced.
	// 6
}

func ExampleFirstOrNull() {
	if _, ok := FirstOrNull(DoubleArrayOf()); !ok {
		fmt.Println("empty")
	}
	// Output: empty
}

func ExampleJoinToString() {
	a := CharArrayFromString("abcdef")

	fmt.Println(JoinToString(a, WithSeparator(""), WithLimit(3), WithTruncated("…")))
	fmt.Println(JoinToString(a, WithPrefix("<"), WithPostfix(">"), WithSeparator("|")))
	// Output:
	// abc…
	// <a|b|c|d|e|f>
}

func ExampleShuffleWith() {
	x := IntArrayOf(1, 2, 3, 4, 5, 6, 7, 8)
	y := IntArrayOf(1, 2, 3, 4, 5, 6, 7, 8)

	ShuffleWith(x, rand.New(rand.NewPCG(1, 2)))
	ShuffleWith(y, rand.New(rand.NewPCG(1, 2)))
	fmt.Println(x.Equal(y))
	// Output: true
}

func ExampleUnion() {
	set := Union(IntArrayOf(3, 1, 3), []int32{2, 1})
	fmt.Println(set.ToSlice())
	// Output: [3 1 2]
}
