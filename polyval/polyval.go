// Package polyval implements POLYVAL, the universal hash function defined
// in RFC 8452 §3 and used by AES-GCM-SIV.
//
// POLYVAL operates similarly to the standard library's hash.Hash
// interface, but it only accepts whole 16-byte blocks: there is no
// internal partial-block buffer, and padding a short final block with
// zeros is the caller's responsibility.
package polyval

import (
	"fmt"

	"github.com/uhfcore/uhf/gf128"
)

// Polyval is a running POLYVAL computation.
type Polyval struct {
	h   gf128.Element
	pow [4]gf128.Element
	y   gf128.Element
}

// New returns a Polyval keyed with h, a 16-byte field element.
func New(h []byte) (*Polyval, error) {
	if len(h) != 16 {
		return nil, fmt.Errorf("polyval: invalid key size: %d", len(h))
	}
	var p Polyval
	p.h = gf128.FromBytes(h)
	p.pow = gf128.PowersOf4(p.h)
	return &p, nil
}

// Size returns the size of a POLYVAL digest.
func (p *Polyval) Size() int { return 16 }

// BlockSize returns the size of a POLYVAL block.
func (p *Polyval) BlockSize() int { return 16 }

// Reset clears the running accumulator back to zero. The key and its
// precomputed powers are unaffected, since POLYVAL (unlike Poly1305) has
// no one-time-key restriction.
func (p *Polyval) Reset() {
	p.y = gf128.Zero
}

// Update absorbs one or more whole 16-byte blocks, computing
//
//	y <- (y XOR x) * H
//
// per block. Update panics if len(blocks) is not a positive multiple of
// the block size.
func (p *Polyval) Update(blocks []byte) {
	if len(blocks) == 0 || len(blocks)%16 != 0 {
		panic("polyval: invalid block length")
	}
	n := len(blocks) / 16
	// Absorb four blocks at a time while we can, using the precomputed
	// powers of H (see gf128.FoldBlocks); the remainder is absorbed with
	// one multiply per block.
	for n >= 4 {
		var four [4]gf128.Element
		for i := range four {
			four[i] = gf128.FromBytes(blocks[i*16 : i*16+16])
		}
		p.y = gf128.FoldBlocks(p.y, p.pow, four[:])
		blocks = blocks[64:]
		n -= 4
	}
	for ; n > 0; n-- {
		x := gf128.FromBytes(blocks[:16])
		p.y = p.y.Xor(x).Mul(p.h)
		blocks = blocks[16:]
	}
}

// Sum appends the current digest to b and returns the resulting slice.
// It does not change the underlying hash state.
func (p *Polyval) Sum(b []byte) []byte {
	sum := p.y.Bytes()
	return append(b, sum[:]...)
}

// Zero overwrites the key, its precomputed powers, and the running
// accumulator. It is provided so a caller managing the instance's
// lifetime can scrub secrets on drop.
func (p *Polyval) Zero() {
	p.h.Zero()
	for i := range p.pow {
		p.pow[i].Zero()
	}
	p.y.Zero()
}

// MarshalBinary returns a snapshot of p's key and running state, so that
// a long-running absorption can be checkpointed and resumed with
// UnmarshalBinary.
func (p *Polyval) MarshalBinary() ([]byte, error) {
	hb := p.h.Bytes()
	yb := p.y.Bytes()
	out := make([]byte, 0, 32)
	out = append(out, hb[:]...)
	out = append(out, yb[:]...)
	return out, nil
}

// UnmarshalBinary restores p from a snapshot produced by MarshalBinary.
func (p *Polyval) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("polyval: invalid snapshot size: %d", len(data))
	}
	p.h = gf128.FromBytes(data[0:16])
	p.pow = gf128.PowersOf4(p.h)
	p.y = gf128.FromBytes(data[16:32])
	return nil
}

// Sum computes POLYVAL(h, blocks) in one call. blocks must be a multiple
// of 16 bytes, already zero-padded by the caller if needed; empty blocks
// yield the all-zero tag.
func Sum(h, blocks []byte) ([16]byte, error) {
	p, err := New(h)
	if err != nil {
		return [16]byte{}, err
	}
	if len(blocks) > 0 {
		p.Update(blocks)
	}
	var out [16]byte
	copy(out[:], p.Sum(nil))
	return out, nil
}

