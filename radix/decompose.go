// SPDX-License-Identifier: MIT
// Package: mixradix/radix
//
// decompose.go — digit extraction on a mixed-radix base and its inverse.
//
// Algorithm Outline (Decompose):
//  1. Validate the base; fail before computing any digit.
//  2. remainder = number.
//  3. For i = n-1 down to 0:
//     digits[i]  = remainder / b[i]
//     remainder  = remainder % b[i]
//  4. digits is already in ascending base order (digits[i] ↔ b[i]).
//
// The top place has no upper bound: digits[n-1] absorbs any magnitude that
// does not fit below it, so
//
//	number == Σ digits[i]·b[i]
//
// holds for every number, not only those below some capacity.
//
// Complexity: O(n) time, O(n) space for the result.

package radix

import "fmt"

// Decomposer converts integers to digits on one validated base.
// It is immutable after construction and safe for concurrent use.
type Decomposer struct {
	base Base
}

// NewDecomposer validates base and returns a Decomposer holding a private copy.
// A non-nil error is always *InvalidBaseError.
func NewDecomposer(base Base) (*Decomposer, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	return &Decomposer{base: base.Clone()}, nil
}

// Base returns a copy of the decomposer's base.
func (d *Decomposer) Base() Base {
	return d.base.Clone()
}

// Len returns the number of places (and digits).
func (d *Decomposer) Len() int {
	return len(d.base)
}

// Decompose returns the digits of number, one per place, smallest place first.
func (d *Decomposer) Decompose(number int) []int {
	return d.DecomposeInto(nil, number)
}

// DecomposeInto writes the digits of number into dst and returns it.
// dst is reused when cap(dst) >= Len(); otherwise a new slice is allocated.
// Hot loops (e.g. enumerating a product) use this to stay allocation-free.
func (d *Decomposer) DecomposeInto(dst []int, number int) []int {
	n := len(d.base)
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	remainder := number
	for i := n - 1; i >= 0; i-- {
		place := d.base[i]
		dst[i] = remainder / place
		remainder %= place
	}

	return dst
}

// Compose is the inverse of Decompose: Σ digits[i]·b[i].
// Returns ErrDigitsMismatch if len(digits) != Len().
// No overflow check is made; digits from Decompose always round-trip.
func (d *Decomposer) Compose(digits []int) (int, error) {
	if len(digits) != len(d.base) {
		return 0, fmt.Errorf("%w: got %d digits for %d places", ErrDigitsMismatch, len(digits), len(d.base))
	}
	number := 0
	for i, digit := range digits {
		number += digit * d.base[i]
	}

	return number, nil
}

// Decompose returns the digits of number on base, smallest place first.
//
// The base is validated first; on failure the *InvalidBaseError is returned
// with no digits. Negative numbers are not rejected: Go's truncated division
// then yields non-positive digits that still satisfy the sum identity.
//
// Examples:
//
//	Decompose(10, Base{1, 2, 4, 8})       // [0 1 0 1]
//	Decompose(10, Base{1, 16, 256})       // [10 0 0]
//	Decompose(100, Base{1, 2, 6, 18, 36}) // [0 2 1 1 2]
func Decompose(number int, base Base) ([]int, error) {
	d, err := NewDecomposer(base)
	if err != nil {
		return nil, err
	}

	return d.Decompose(number), nil
}

// Compose validates base and returns Σ digits[i]·base[i].
func Compose(digits []int, base Base) (int, error) {
	d, err := NewDecomposer(base)
	if err != nil {
		return 0, err
	}

	return d.Compose(digits)
}
