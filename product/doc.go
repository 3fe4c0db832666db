// Package product enumerates the Cartesian product of any number of
// sequences by treating their lengths as a mixed-radix number system.
//
// 🚀 How it works
//
//	For k sequences with lengths len_0..len_{k-1} the stride base is
//
//	  s[0] = 1,  s[i+1] = s[i]·len_i,  T = s[k]
//
//	Every linear index idx in [0, T) decomposes on s[0..k) (see package
//	radix) into one element index per sequence. Walking idx upward visits
//	each combination exactly once, with no recursion and no nested loops:
//
//	  lists = {1,2,4,8} × {0,1,2,3}    s = {1, 4, 16}
//	  idx 0 → [1 0]   idx 1 → [2 0]   …   idx 4 → [1 1]   …   idx 15 → [8 3]
//
//	The first sequence varies fastest, the last slowest.
//
// ✨ Key features:
//   - Enumerate: materialise every combination (optionally a window of them).
//   - All:       lazy iter.Seq2 over (index, combination).
//   - At:        random access to the combination at one linear index.
//   - IndexOf:   inverse of At, from per-sequence element indices.
//   - Count:     T without enumerating.
//   - Sequences may differ in length; an empty sequence (or none at all)
//     yields no combinations.
//
// ⚙️ Options:
//
//	WithOffset(n) — start at linear index n.
//	WithLimit(n)  — produce at most n combinations.
//
// Element types: lists is [][]T. Mixed element types per position are
// expressed with T = any and a type switch at the call site.
//
// Errors:
//   - *radix.InvalidBaseError (Overflow) when T exceeds math.MaxInt.
//   - ErrIndexOutOfRange, ErrSelectionMismatch from At / IndexOf.
//
// Every function is pure and leaves its inputs untouched.
package product
