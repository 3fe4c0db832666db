// SPDX-License-Identifier: MIT
// Package: mixradix/product
//
// options.go — functional options and their resolved configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Enumeration itself never panics on user input.
//   • Options apply in order; the last one wins.
//   • Defaults: offset = 0, limit = unbounded.

package product

// Option customizes which slice of the linear index range is produced.
type Option func(*config)

// config aggregates the enumeration window. Passed by value.
type config struct {
	offset int // first linear index to emit (>= 0)
	limit  int // max combinations to emit; noLimit means unbounded
}

// noLimit marks an unbounded window.
const noLimit = -1

// newConfig returns the defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{offset: 0, limit: noLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOffset starts enumeration at linear index n instead of 0.
// An offset at or beyond the total count yields no combinations.
// Panics if n < 0.
func WithOffset(n int) Option {
	if n < 0 {
		panic("product: WithOffset(n<0)")
	}
	return func(c *config) {
		c.offset = n
	}
}

// WithLimit caps the number of combinations produced at n.
// WithLimit(0) is valid and yields nothing. Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic("product: WithLimit(n<0)")
	}
	return func(c *config) {
		c.limit = n
	}
}

// window clamps the configured range to [0, total) and returns [start, end).
func (c config) window(total int) (start, end int) {
	start = min(c.offset, total)
	end = total
	if c.limit != noLimit && c.limit < total-start {
		end = start + c.limit
	}

	return start, end
}
