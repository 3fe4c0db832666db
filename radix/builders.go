package radix

import (
	"fmt"
	"math"
)

// FromRadices builds the base whose consecutive ratios are radices:
//
//	b[0] = 1
//	b[i+1] = b[i] * radices[i]
//
// The result has len(radices)+1 places; the top place b[len(radices)] equals
// the product of all radices, i.e. the count of distinct digit sequences
// below it. A radix < 2 is reported as NotIncreasing at the place it would
// produce. A product beyond math.MaxInt is reported as Overflow; the error's
// Base then holds only the places that fit and Index names the missing one.
//
// Example:
//
//	FromRadices(60, 60, 24) // {1, 60, 3600, 86400}
func FromRadices(radices ...int) (Base, error) {
	b := make(Base, 1, len(radices)+1)
	b[0] = 1
	for i, r := range radices {
		prev := b[i]
		if r < 2 {
			b = append(b, prev*r)

			return nil, newInvalidBaseError(b, i+1, NotIncreasing)
		}
		if prev > math.MaxInt/r {
			return nil, newInvalidBaseError(b, i+1, Overflow)
		}
		b = append(b, prev*r)
	}

	return b, nil
}

// Positional builds the fixed-radix base {1, radix, radix², …} with the given
// number of places.
//
// Errors:
//   - ErrBadRadix   if radix < 2.
//   - ErrBadPlaces  if places < 1.
//   - *InvalidBaseError (Overflow) if radix^(places-1) exceeds math.MaxInt.
func Positional(radix, places int) (Base, error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRadix, radix)
	}
	if places < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadPlaces, places)
	}
	radices := make([]int, places-1)
	for i := range radices {
		radices[i] = radix
	}

	return FromRadices(radices...)
}
