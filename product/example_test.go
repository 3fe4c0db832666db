package product_test

import (
	"fmt"

	"github.com/katalvlaran/mixradix/product"
)

// ExampleEnumerate lists all 16 pairs; the first list varies fastest.
func ExampleEnumerate() {
	combos, err := product.Enumerate([][]int{{1, 2, 4, 8}, {0, 1, 2, 3}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(combos))
	fmt.Println(combos[:5])
	fmt.Println(combos[15])
	// Output:
	// 16
	// [[1 0] [2 0] [4 0] [8 0] [1 1]]
	// [8 3]
}

// ExampleAll walks a hyper-parameter grid lazily, one page at a time.
func ExampleAll() {
	grid := [][]any{
		{0.1, 0.01},     // learning rate
		{32, 64},        // batch size
		{"adam", "sgd"}, // optimizer
	}
	seq, err := product.All(grid, product.WithOffset(2), product.WithLimit(3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for idx, cfg := range seq {
		fmt.Println(idx, cfg)
	}
	// Output:
	// 2 [0.1 64 adam]
	// 3 [0.01 64 adam]
	// 4 [0.1 32 sgd]
}

// ExampleAt jumps straight to one combination and back.
func ExampleAt() {
	lists := [][]string{{"red", "green"}, {"S", "M", "L"}}

	combo, _ := product.At(lists, 5)
	idx, _ := product.IndexOf(lists, []int{1, 2})
	fmt.Println(combo, idx)
	// Output:
	// [green L] 5
}
