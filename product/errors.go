package product

import "errors"

// Sentinel errors returned by the random-access helpers.
//
// Base violations from the stride derivation are not redeclared here:
// they surface unchanged as *radix.InvalidBaseError.
var (
	// ErrIndexOutOfRange indicates a linear index outside [0, T) or a
	// per-sequence selection outside [0, len(list)).
	ErrIndexOutOfRange = errors.New("product: index out of range")

	// ErrSelectionMismatch indicates a selection whose length differs from
	// the number of input sequences.
	ErrSelectionMismatch = errors.New("product: selection length does not match sequence count")

	// ErrTooLarge indicates a window whose element count (combinations × k)
	// does not fit in int, so Enumerate cannot materialise it.
	ErrTooLarge = errors.New("product: result too large to materialise")
)
