//go:build amd64 && gc && !purego

package poly1305

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

var backendTag = selectBackend()

func selectBackend() BackendTag {
	if hasAVX2 {
		return BackendAVX2
	}
	return BackendSoft
}

// mulu32x4Asm mirrors VPMULUDQ's calling convention: it multiplies the
// low 32 bits of each of the four 64-bit lanes in x and y, producing four
// full 64-bit products in dst. It is generated with
// github.com/mmcloughlin/avo (see asm/poly1305avx2).
//
//go:noescape
func mulu32x4Asm(dst *[4]uint64, x, y *[4]uint64)

func mulu32x4(x, y [4]uint64) [4]uint64 {
	var dst [4]uint64
	mulu32x4Asm(&dst, &x, &y)
	return dst
}

func addLanes(vs ...[4]uint64) [4]uint64 {
	var out [4]uint64
	for _, v := range vs {
		out[0] += v[0]
		out[1] += v[1]
		out[2] += v[2]
		out[3] += v[3]
	}
	return out
}

func hsum(v [4]uint64) uint64 {
	return v[0] + v[1] + v[2] + v[3]
}

// absorbFull absorbs a whole-block-multiple message, using blocksAVX2 on
// any 4-block-aligned prefix and falling back to the portable blocks for
// the remainder (and for the whole message when this binary has no AVX2).
func (p *Poly1305) absorbFull(m []byte) {
	if hasAVX2 {
		if n4 := len(m) &^ (4*BlockSize - 1); n4 > 0 {
			p.blocksAVX2(m[:n4])
			m = m[n4:]
		}
	}
	if len(m) > 0 {
		p.blocks(m, len(m))
	}
}

// blocksAVX2 absorbs m, whose length must be a multiple of 4*BlockSize,
// four blocks at a time. Instead of four independent schoolbook-multiply-
// then-carry passes, it multiplies each of the four blocks by a distinct
// precomputed power of r (the oldest block by r^4, the newest by r^1),
// folds in the running accumulator's own contribution (acc*r^4), sums
// every block's pre-carry terms at each of the five limb positions across
// all four lanes with one VPMULUDQ per schoolbook term, and carries only
// once per group instead of once per block.
func (p *Poly1305) blocksAVX2(m []byte) {
	r1, r2, r3, r4 := p.r, p.r2, p.r3, p.r4

	// blocks absorbs each block as h = (h+m)*r mod p, so folding four new
	// blocks m1 (oldest) .. m4 (newest) onto an existing accumulator acc
	// gives acc*r^4 + m1*r^4 + m2*r^3 + m3*r^2 + m4*r^1; the acc*r^4 term
	// is folded in separately below via schoolbookTerms(p.h, r4).
	// bLanes[k] holds limb k of r^4, r^3, r^2, r^1 in lanes 0..3, the
	// power applied to m1 down to m4 respectively.
	var bLanes, sLanes [5][4]uint64
	for k := 0; k < 5; k++ {
		bLanes[k] = [4]uint64{uint64(r4[k]), uint64(r3[k]), uint64(r2[k]), uint64(r1[k])}
	}
	for k := 1; k < 5; k++ {
		sLanes[k] = [4]uint64{
			bLanes[k][0] * 5, bLanes[k][1] * 5, bLanes[k][2] * 5, bLanes[k][3] * 5,
		}
	}

	for len(m) >= 4*BlockSize {
		var a [5][4]uint64
		for lane := 0; lane < 4; lane++ {
			blk := m[lane*BlockSize : lane*BlockSize+BlockSize]
			a[0][lane] = uint64(binary.LittleEndian.Uint32(blk[0:])) & 0x3ffffff
			a[1][lane] = uint64(binary.LittleEndian.Uint32(blk[3:])>>2) & 0x3ffffff
			a[2][lane] = uint64(binary.LittleEndian.Uint32(blk[6:])>>4) & 0x3ffffff
			a[3][lane] = uint64(binary.LittleEndian.Uint32(blk[9:])>>6) & 0x3ffffff
			a[4][lane] = uint64(binary.LittleEndian.Uint32(blk[12:])>>8) | (1 << 24)
		}

		d0 := hsum(addLanes(
			mulu32x4(a[0], bLanes[0]), mulu32x4(a[1], sLanes[4]), mulu32x4(a[2], sLanes[3]),
			mulu32x4(a[3], sLanes[2]), mulu32x4(a[4], sLanes[1]),
		))
		d1 := hsum(addLanes(
			mulu32x4(a[0], bLanes[1]), mulu32x4(a[1], bLanes[0]), mulu32x4(a[2], sLanes[4]),
			mulu32x4(a[3], sLanes[3]), mulu32x4(a[4], sLanes[2]),
		))
		d2 := hsum(addLanes(
			mulu32x4(a[0], bLanes[2]), mulu32x4(a[1], bLanes[1]), mulu32x4(a[2], bLanes[0]),
			mulu32x4(a[3], sLanes[4]), mulu32x4(a[4], sLanes[3]),
		))
		d3 := hsum(addLanes(
			mulu32x4(a[0], bLanes[3]), mulu32x4(a[1], bLanes[2]), mulu32x4(a[2], bLanes[1]),
			mulu32x4(a[3], bLanes[0]), mulu32x4(a[4], sLanes[4]),
		))
		d4 := hsum(addLanes(
			mulu32x4(a[0], bLanes[4]), mulu32x4(a[1], bLanes[3]), mulu32x4(a[2], bLanes[2]),
			mulu32x4(a[3], bLanes[1]), mulu32x4(a[4], bLanes[0]),
		))

		t0, t1, t2, t3, t4 := schoolbookTerms(p.h, r4)
		h := carryReduce(t0+d0, t1+d1, t2+d2, t3+d3, t4+d4)
		p.h = h

		m = m[4*BlockSize:]
	}
}
