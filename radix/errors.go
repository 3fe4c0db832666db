// SPDX-License-Identifier: MIT
// Package: mixradix/radix
//
// errors.go — sentinel errors and the structured base-violation error.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Every base violation is reported as *InvalidBaseError, which matches
//     ErrInvalidBase under errors.Is and carries the offending base.
//   • Validation runs before any digit is computed; no partial results.

package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is matched by every *InvalidBaseError.
	ErrInvalidBase = errors.New("radix: invalid base")

	// ErrDigitsMismatch indicates a digit sequence whose length differs from the base.
	ErrDigitsMismatch = errors.New("radix: digits length does not match base")

	// ErrBadRadix indicates a fixed radix smaller than 2.
	ErrBadRadix = errors.New("radix: radix must be >= 2")

	// ErrBadPlaces indicates a request for fewer than one place.
	ErrBadPlaces = errors.New("radix: places must be >= 1")
)

// Violation names the base invariant that failed.
type Violation int

const (
	// FirstNotOne: the base is empty or b[0] != 1.
	FirstNotOne Violation = iota

	// NotIncreasing: b[i] <= b[i-1].
	NotIncreasing

	// NotMultiple: b[i] % b[i-1] != 0.
	NotMultiple

	// Overflow: a derived place value does not fit in int.
	Overflow
)

// String returns a short human-readable name.
func (v Violation) String() string {
	switch v {
	case FirstNotOne:
		return "first place is not 1"
	case NotIncreasing:
		return "not strictly increasing"
	case NotMultiple:
		return "not a multiple of the previous place"
	case Overflow:
		return "place value overflows int"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// InvalidBaseError reports a base that breaks one of the structural invariants.
//
// Base is a private copy of the rejected base, so later mutation of the
// caller's slice does not change the report. Index is the position of the
// first offending element (0 for an empty base).
type InvalidBaseError struct {
	Base      Base
	Index     int
	Violation Violation
}

// newInvalidBaseError copies base so the error never aliases caller memory.
func newInvalidBaseError(base Base, index int, v Violation) *InvalidBaseError {
	return &InvalidBaseError{Base: base.Clone(), Index: index, Violation: v}
}

// Error implements error.
func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("%s %v: %s at index %d", ErrInvalidBase, []int(e.Base), e.Violation, e.Index)
}

// Is reports whether target is ErrInvalidBase.
func (e *InvalidBaseError) Is(target error) bool {
	return target == ErrInvalidBase
}
