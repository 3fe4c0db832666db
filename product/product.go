// SPDX-License-Identifier: MIT
// Package: mixradix/product
//
// product.go — Cartesian product via linear-index decomposition.
//
// Algorithm Outline (Enumerate):
//  1. Derive the stride base s from the input lengths; T = s[k].
//  2. If T == 0 (some sequence is empty, or k == 0) return an empty result.
//  3. For idx = 0 .. T-1: decompose idx on s[0..k) and select
//     lists[j][digit[j]] for every j.
//  4. First sequence varies fastest, last sequence slowest.
//
// No recursion and no nested loops of data-dependent depth: one linear loop
// plus an O(k) decomposition per combination.
//
// Complexity:
//
//	Time   = O(T·k)
//	Memory = O(T·k) for Enumerate, O(k) per step for All and At.

package product

import (
	"fmt"
	"iter"
	"math"
)

// Enumerate returns every combination of one element per sequence, in
// ascending linear-index order (first sequence fastest-varying).
//
// Options select a window of the index range:
//
//	Enumerate(lists, WithOffset(o), WithLimit(n)) == Enumerate(lists)[o : min(o+n, T)]
//
// The result is never nil. All combinations share one backing array, but
// each is capped to its own length, so appending to one cannot overwrite
// another. Input sequences are not modified.
//
// Enumerate materialises every combination in the window at once, which
// needs (combinations × k) elements of memory. It returns ErrTooLarge when
// that count does not fit in int; below that bound an unrealistically large
// window still exhausts memory. For big products use All, At, or narrow
// the window with WithOffset/WithLimit.
//
// Errors:
//   - *radix.InvalidBaseError (Overflow) when T does not fit in int.
//   - ErrTooLarge when the window's element count does not fit in int.
//
// Example:
//
//	combos, _ := Enumerate([][]int{{1, 2}, {0, 1}})
//	// [[1 0] [2 0] [1 1] [2 1]]
func Enumerate[T any](lists [][]T, opts ...Option) ([][]T, error) {
	cfg := newConfig(opts...)
	l, err := newLayout(lengthsOf(lists))
	if err != nil {
		return nil, err
	}

	start, end := cfg.window(l.total)
	n, k := end-start, len(lists)
	if n == 0 {
		return [][]T{}, nil
	}
	if n > math.MaxInt/k {
		return nil, fmt.Errorf("%w: %d combinations of %d elements", ErrTooLarge, n, k)
	}

	out := make([][]T, n)
	flat := make([]T, n*k)
	sel := make([]int, k)
	var digits []int
	for i := range out {
		row := flat[i*k : (i+1)*k : (i+1)*k]
		digits = pick(row, lists, l, start+i, sel, digits)
		out[i] = row
	}

	return out, nil
}

// All returns a lazy sequence over the same combinations as Enumerate with
// the same options, paired with their linear index. Each yielded slice is
// freshly allocated and owned by the caller. Stopping the range loop early
// stops the work.
//
// The stride base is derived up front, so the only error
// (*radix.InvalidBaseError, Overflow) is reported before iteration starts.
func All[T any](lists [][]T, opts ...Option) (iter.Seq2[int, []T], error) {
	cfg := newConfig(opts...)
	l, err := newLayout(lengthsOf(lists))
	if err != nil {
		return nil, err
	}
	start, end := cfg.window(l.total)

	return func(yield func(int, []T) bool) {
		sel := make([]int, len(lists))
		var digits []int
		for idx := start; idx < end; idx++ {
			combo := make([]T, len(lists))
			digits = pick(combo, lists, l, idx, sel, digits)
			if !yield(idx, combo) {
				return
			}
		}
	}, nil
}

// Count returns T, the number of combinations: the product of all lengths,
// or 0 when there are no sequences or any sequence is empty.
func Count[T any](lists [][]T) (int, error) {
	l, err := newLayout(lengthsOf(lists))
	if err != nil {
		return 0, err
	}

	return l.total, nil
}

// At returns the combination at linear index idx without enumerating the
// ones before it. Returns ErrIndexOutOfRange unless 0 <= idx < T.
func At[T any](lists [][]T, idx int) ([]T, error) {
	l, err := newLayout(lengthsOf(lists))
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= l.total {
		return nil, fmt.Errorf("%w: index %d, total %d", ErrIndexOutOfRange, idx, l.total)
	}

	combo := make([]T, len(lists))
	pick(combo, lists, l, idx, make([]int, len(lists)), nil)

	return combo, nil
}

// IndexOf is the inverse of At: given the element index chosen from every
// sequence, it returns the linear index of that combination.
//
// Errors:
//   - ErrSelectionMismatch if len(selection) != len(lists).
//   - ErrIndexOutOfRange   if any selection[j] is outside [0, len(lists[j])),
//     which includes every selection when some sequence is empty.
func IndexOf[T any](lists [][]T, selection []int) (int, error) {
	if len(selection) != len(lists) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrSelectionMismatch, len(selection), len(lists))
	}
	for j, s := range selection {
		if s < 0 || s >= len(lists[j]) {
			return 0, fmt.Errorf("%w: selection[%d] = %d, len = %d", ErrIndexOutOfRange, j, s, len(lists[j]))
		}
	}
	l, err := newLayout(lengthsOf(lists))
	if err != nil {
		return 0, err
	}
	if l.dec == nil {
		// Empty sequences already failed the range check, so total == 0
		// means k == 0. Otherwise every sequence is a singleton.
		if l.total == 0 {
			return 0, fmt.Errorf("%w: no combinations", ErrIndexOutOfRange)
		}

		return 0, nil
	}

	digits := make([]int, l.dec.Len())
	for j, p := range l.places {
		if p >= 0 {
			digits[p] = selection[j]
		}
	}

	return l.dec.Compose(digits)
}
