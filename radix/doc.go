// Package radix decomposes non-negative integers on mixed-radix bases.
//
// 🚀 What is a mixed-radix base?
//
//	A positional numeral system where every place value is an integer
//	multiple of the previous one, instead of a fixed power of one radix:
//	  • binary   {1, 2, 4, 8}         (radix 2 throughout)
//	  • decimal  {1, 10, 100}         (radix 10 throughout)
//	  • time     {1, 60, 3600, 86400} (60, 60, 24)
//	  • strides  {1, 4, 12}           (lengths of nested sequences: 4, 3)
//
// ✨ Key features:
//   - Validate: three structural invariants, first violation reported as
//     *InvalidBaseError (matches ErrInvalidBase via errors.Is).
//   - Decompose: digits ordered like the base (digits[i] ↔ base[i]),
//     most-significant place absorbs any excess magnitude.
//   - Compose: the inverse sum Σ digits[i]·base[i].
//   - Decomposer: validate once, decompose many times without allocation.
//   - FromRadices / Positional: build bases from ratios or a fixed radix.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mixradix/radix"
//
//	digits, err := radix.Decompose(100, radix.Base{1, 2, 6, 18, 36})
//	if err != nil {
//	  var ibe *radix.InvalidBaseError
//	  if errors.As(err, &ibe) { /* inspect ibe.Base, ibe.Violation */ }
//	}
//	// digits == [0 2 1 1 2]
//
// Performance:
//
//   - Validate:  O(n) time, O(1) memory
//   - Decompose: O(n) time, O(n) memory (O(1) with DecomposeInto)
//
// All functions are pure; nothing is shared between calls.
package radix
