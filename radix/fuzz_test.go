package radix_test

import (
	"testing"

	"github.com/katalvlaran/mixradix/radix"
)

// FuzzDecompose checks the reconstruction identity and the per-place digit
// bound on arbitrary numbers and small mixed radices.
//
// Run with: go test -fuzz=FuzzDecompose ./radix/
func FuzzDecompose(f *testing.F) {
	f.Add(10, uint8(2), uint8(2), uint8(2))
	f.Add(100, uint8(2), uint8(3), uint8(3))
	f.Add(0, uint8(10), uint8(10), uint8(10))
	f.Add(int(^uint(0)>>1), uint8(255), uint8(255), uint8(255))

	f.Fuzz(func(t *testing.T, number int, r0, r1, r2 uint8) {
		if number < 0 {
			number = ^number // maps [MinInt, -1] onto [0, MaxInt]
		}
		radices := []int{int(r0)%30 + 2, int(r1)%30 + 2, int(r2)%30 + 2}
		base, err := radix.FromRadices(radices...)
		if err != nil {
			t.Fatalf("FromRadices(%v): %v", radices, err)
		}

		digits, err := radix.Decompose(number, base)
		if err != nil {
			t.Fatalf("Decompose(%d, %v): %v", number, base, err)
		}
		for i, r := range radices {
			if digits[i] < 0 || digits[i] >= r {
				t.Fatalf("digit %d = %d outside [0,%d) for %d on %v", i, digits[i], r, number, base)
			}
		}
		got, err := radix.Compose(digits, base)
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if got != number {
			t.Fatalf("round trip %d -> %v -> %d on %v", number, digits, got, base)
		}
	})
}
