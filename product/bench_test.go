package product_test

import (
	"testing"

	"github.com/katalvlaran/mixradix/product"
)

// benchLists builds k sequences of length n filled with predictable values.
func benchLists(k, n int) [][]int {
	lists := make([][]int, k)
	for j := range lists {
		lists[j] = make([]int, n)
		for i := range lists[j] {
			lists[j][i] = j*n + i
		}
	}

	return lists
}

// BenchmarkEnumerate_4x10 materialises 10^4 combinations of 4 elements.
func BenchmarkEnumerate_4x10(b *testing.B) {
	lists := benchLists(4, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := product.Enumerate(lists); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkAll_4x10 iterates the same product lazily.
func BenchmarkAll_4x10(b *testing.B) {
	lists := benchLists(4, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := product.All(lists)
		if err != nil {
			b.Fatalf("All failed: %v", err)
		}
		for range seq {
		}
	}
}

// BenchmarkAt_8x8 measures random access into a 16M-combination product.
func BenchmarkAt_8x8(b *testing.B) {
	lists := benchLists(8, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := product.At(lists, i%(1<<24)); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}
