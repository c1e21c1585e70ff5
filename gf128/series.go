package gf128

// PowersOf4 returns H, H^2, H^3, H^4, the precomputed powers used by
// FoldBlocks to absorb four blocks per group.
func PowersOf4(h Element) (p [4]Element) {
	p[0] = h
	for i := 1; i < 4; i++ {
		p[i] = p[i-1].Mul(h)
	}
	return p
}

// FoldBlocks absorbs a whole multiple of 4 blocks into acc using the
// precomputed powers {H, H^2, H^3, H^4}, evaluating
//
//	(X_0*H^4 + X_1*H^3 + X_2*H^2 + X_3*H) + acc*H^4
//
// per group of four, which equals four serial (acc^X)*H steps. Each of
// the five products in a group is a full Mul with its own reduction, so
// a group costs five reductions; reductions are not deferred or shared
// across the group. len(blocks) must be a multiple of 4 (FoldBlocks
// panics otherwise); callers are responsible for handling the remainder
// with single-block Mul calls.
func FoldBlocks(acc Element, pow [4]Element, blocks []Element) Element {
	if len(blocks)%4 != 0 {
		panic("gf128: FoldBlocks requires a multiple of 4 blocks")
	}
	for i := 0; i < len(blocks); i += 4 {
		t := blocks[i].Mul(pow[3]).
			Xor(blocks[i+1].Mul(pow[2])).
			Xor(blocks[i+2].Mul(pow[1])).
			Xor(blocks[i+3].Mul(pow[0]))
		acc = acc.Mul(pow[3]).Xor(t)
	}
	return acc
}
