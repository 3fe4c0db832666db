package radix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mixradix/radix"
)

// ExampleDecompose decomposes 10 on the classic fixed-radix bases.
func ExampleDecompose() {
	for _, base := range []radix.Base{
		{1, 2, 4, 8}, // binary
		{1, 8, 64},   // octal
		{1, 10, 100}, // decimal
		{1, 16, 256}, // hexadecimal
	} {
		digits, err := radix.Decompose(10, base)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(base, "->", digits)
	}
	// Output:
	// [1 2 4 8] -> [0 1 0 1]
	// [1 8 64] -> [2 1 0]
	// [1 10 100] -> [0 1 0]
	// [1 16 256] -> [10 0 0]
}

// ExampleDecompose_invalid shows how to inspect a rejected base.
func ExampleDecompose_invalid() {
	_, err := radix.Decompose(10, radix.Base{1, 2, 3})

	var ibe *radix.InvalidBaseError
	if errors.As(err, &ibe) {
		fmt.Println(ibe.Violation, "at index", ibe.Index)
	}
	fmt.Println(errors.Is(err, radix.ErrInvalidBase))
	// Output:
	// not a multiple of the previous place at index 2
	// true
}

// ExampleFromRadices splits a duration in seconds into s/min/h/days.
func ExampleFromRadices() {
	base, err := radix.FromRadices(60, 60, 24)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	digits, _ := radix.Decompose(200000, base)
	fmt.Printf("%dd %dh %dm %ds\n", digits[3], digits[2], digits[1], digits[0])
	// Output:
	// 2d 7h 33m 20s
}
