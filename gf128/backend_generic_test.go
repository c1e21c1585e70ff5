package gf128

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

// TestCtmulGenericAgainstSchoolbook checks ctmulGeneric's Karatsuba/bmul64
// composition against a naive shift-and-xor carry-less multiply, which is
// slow but trivially correct by construction.
func TestCtmulGenericAgainstSchoolbook(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 1e4; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		wantHi, wantLo := clmulSchoolbook(x, y)
		gotHi, gotLo := ctmulGeneric(x, y)
		if wantHi != gotHi || wantLo != gotLo {
			t.Fatalf("ctmulGeneric(%#016x,%#016x) = (%#016x,%#016x), want (%#016x,%#016x)",
				x, y, gotHi, gotLo, wantHi, wantLo)
		}
	}
}

// clmulSchoolbook computes the 128-bit carry-less product of x and y one
// bit at a time, with no shared logic with ctmulGeneric, so it can serve
// as an independent oracle in tests.
func clmulSchoolbook(x, y uint64) (hi, lo uint64) {
	for i := 0; i < 64; i++ {
		mask := uint64(0) - (y >> i & 1) // all-ones if bit i of y is set
		term := x & mask
		lo ^= term << i
		if i > 0 {
			hi ^= term >> (64 - i)
		}
	}
	return hi, lo
}
