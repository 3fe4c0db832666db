package radix

import "slices"

// Base is an ordered sequence of place values, smallest first.
//
// A valid Base satisfies:
//   - b[0] == 1
//   - b[i] > b[i-1] for every i > 0
//   - b[i] % b[i-1] == 0 for every i > 0
//
// Fixed-radix systems are the special case b[i] = radix^i:
//
//	binary  {1, 2, 4, 8}
//	decimal {1, 10, 100}
//	hex     {1, 16, 256}
//
// A mixed-radix Base lets every place be an arbitrary multiple of the one
// before it, e.g. seconds/minutes/hours/days {1, 60, 3600, 86400}.
type Base []int

// Clone returns an independent copy of b (nil stays nil).
func (b Base) Clone() Base {
	return slices.Clone(b)
}

// Validate checks the base invariants in order: first place, strict
// increase, exact multiple. The first failure is returned as *InvalidBaseError.
//
// Complexity: O(n) time, O(1) space when valid.
func (b Base) Validate() error {
	if len(b) == 0 || b[0] != 1 {
		return newInvalidBaseError(b, 0, FirstNotOne)
	}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return newInvalidBaseError(b, i, NotIncreasing)
		}
		if b[i]%b[i-1] != 0 {
			return newInvalidBaseError(b, i, NotMultiple)
		}
	}

	return nil
}

// Radices returns the ratio between each place and the one before it,
// i.e. the number of distinct digit values each non-top place can hold.
// The result has len(b)-1 elements. The base must already be valid.
func (b Base) Radices() []int {
	if len(b) < 2 {
		return []int{}
	}
	out := make([]int, len(b)-1)
	for i := 1; i < len(b); i++ {
		out[i-1] = b[i] / b[i-1]
	}

	return out
}

// Validate is the function form of Base.Validate.
func Validate(base Base) error {
	return base.Validate()
}
