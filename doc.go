// Package mixradix is a small, pure-Go toolkit for mixed-radix arithmetic
// and the Cartesian products built on top of it.
//
// 🚀 What is in the box?
//
//	radix/   — validate mixed-radix bases, decompose integers into digits
//	           and compose them back (FromRadices, Positional, Decomposer)
//	product/ — enumerate, page, iterate and randomly access every
//	           combination of N sequences via linear-index decomposition
//
// ✨ Why mixed radix?
//
//   - One loop instead of N nested loops: any number of sequences, any lengths.
//   - Stable linear indices: combination #i is always the same combination.
//   - Random access: jump to combination #i in O(N), or map a combination back.
//   - Pure and deterministic: no globals, no goroutines, inputs never mutated.
//
// Quick example:
//
//	digits, _ := radix.Decompose(100, radix.Base{1, 2, 6, 18, 36}) // [0 2 1 1 2]
//	combos, _ := product.Enumerate([][]int{{1, 2}, {0, 1}})        // [[1 0] [2 0] [1 1] [2 1]]
//
// Runnable scenarios live in examples/.
//
//	go get github.com/katalvlaran/mixradix
package mixradix
