package gf128

// ctmulGeneric computes the 128-bit carry-less product of x and y using
// only ordinary 64-bit integer multiplication.
//
// It is a Karatsuba split of a 32-bit primitive, bmul64, adapted from the
// BearSSL ghash_ctmul64 technique: bmul64(a, b) returns the exact 64-bit
// carry-less product of two 32-bit-or-smaller operands (a 32x32 GF(2)[x]
// product has degree <= 62, so it never overflows 64 bits). Composing
// three such 32-bit-input calls at the 64-bit level, Karatsuba-style,
// yields the full 128-bit product of two 64-bit operands with one fewer
// multiply than schoolbook.
//
// This is constant-time only insofar as the underlying integer multiply
// instruction is constant-time, which is a platform precondition, not
// something this function can verify.
func ctmulGeneric(x, y uint64) (hi, lo uint64) {
	xl, xh := x&0xffffffff, x>>32
	yl, yh := y&0xffffffff, y>>32

	z0 := bmul64(xl, yl)
	z2 := bmul64(xh, yh)
	z1 := bmul64(xl^xh, yl^yh) ^ z0 ^ z2

	lo = z0 ^ (z1 << 32)
	hi = z2 ^ (z1 >> 32)
	return hi, lo
}

// bmul64 returns the carry-less product of x and y, each of which must fit
// in 32 bits, as an exact (non-truncated) 64-bit result.
//
// The technique separates each operand into four interleaved "lanes" (by
// residue of bit position mod 4) with 3-bit zero gaps between set bits in
// the same lane, so that when the lanes are recombined with an ordinary
// multiply, carries generated within one lane cannot propagate into its
// neighbor. Every pairwise lane product is taken (16 multiplies total) and
// XORed, not added, into the four result lanes, which are then masked
// apart and OR'd back together.
func bmul64(x, y uint64) uint64 {
	const (
		m0 = 0x1111111111111111
		m1 = 0x2222222222222222
		m2 = 0x4444444444444444
		m3 = 0x8888888888888888
	)

	x0, x1, x2, x3 := x&m0, x&m1, x&m2, x&m3
	y0, y1, y2, y3 := y&m0, y&m1, y&m2, y&m3

	z0 := (x0 * y0) ^ (x1 * y3) ^ (x2 * y2) ^ (x3 * y1)
	z1 := (x0 * y1) ^ (x1 * y0) ^ (x2 * y3) ^ (x3 * y2)
	z2 := (x0 * y2) ^ (x1 * y1) ^ (x2 * y0) ^ (x3 * y3)
	z3 := (x0 * y3) ^ (x1 * y2) ^ (x2 * y1) ^ (x3 * y0)

	return (z0 & m0) | (z1 & m1) | (z2 & m2) | (z3 & m3)
}
