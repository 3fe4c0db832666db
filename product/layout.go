package product

import "github.com/katalvlaran/mixradix/radix"

// layout maps linear indices to per-sequence selections for one set of
// input lengths.
//
// Stride base: s[0] = 1, s[i+1] = s[i]·len_i. A sequence of length 1 would
// repeat a place value, so only sequences with length >= 2 contribute a
// place; singletons always select element 0. The decomposer works on the
// stride base truncated to its first m places (m = varying sequences), and
// s[m] is the total count T.
type layout struct {
	// total is T, the number of combinations.
	total int
	// places[j] is the digit index driving sequence j, or -1 for a singleton.
	places []int
	// dec decomposes on the truncated stride base; nil when m == 0.
	dec *radix.Decomposer
}

// lengthsOf returns len(lists[j]) for every j.
func lengthsOf[T any](lists [][]T) []int {
	lengths := make([]int, len(lists))
	for j, list := range lists {
		lengths[j] = len(list)
	}

	return lengths
}

// newLayout derives the stride base from lengths. Any zero length (or no
// sequences at all) gives total == 0 without building a base. A non-nil
// error is the *radix.InvalidBaseError of the derived base, which for
// non-negative lengths can only be an Overflow of T.
func newLayout(lengths []int) (*layout, error) {
	l := &layout{places: make([]int, len(lengths))}
	if len(lengths) == 0 {
		return l, nil
	}
	for _, n := range lengths {
		if n == 0 {
			return l, nil
		}
	}

	radices := make([]int, 0, len(lengths))
	for j, n := range lengths {
		if n == 1 {
			l.places[j] = -1
			continue
		}
		l.places[j] = len(radices)
		radices = append(radices, n)
	}

	strides, err := radix.FromRadices(radices...)
	if err != nil {
		return nil, err
	}
	m := len(radices)
	l.total = strides[m]
	if m > 0 {
		if l.dec, err = radix.NewDecomposer(strides[:m]); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// selection writes the per-sequence element indices for linear index idx
// into sel (len(sel) == len(l.places)). digits is scratch space for the
// decomposer and is returned for reuse.
func (l *layout) selection(idx int, sel, digits []int) []int {
	if l.dec != nil {
		digits = l.dec.DecomposeInto(digits, idx)
	}
	for j, p := range l.places {
		if p < 0 {
			sel[j] = 0
		} else {
			sel[j] = digits[p]
		}
	}

	return digits
}

// pick fills dst with the combination at linear index idx.
// sel and digits are scratch buffers; the updated digits buffer is returned.
func pick[T any](dst []T, lists [][]T, l *layout, idx int, sel, digits []int) []int {
	digits = l.selection(idx, sel, digits)
	for j, s := range sel {
		dst[j] = lists[j][s]
	}

	return digits
}
