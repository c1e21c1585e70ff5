// Package ghash implements GHASH, the universal hash function defined in
// NIST SP 800-38D and used by AES-GCM.
//
// GHASH and POLYVAL operate over isomorphic fields: GHASH encodes a field
// element big-endian by byte with reduction polynomial
// x^128+x^7+x^2+x+1, while POLYVAL encodes the same bits little-endian
// by byte with x^128+x^127+x^126+x^121+1. The two are related by
// reversing byte order plus one extra multiply-by-x, as described in
// RFC 8452 Appendix A. Rather than duplicate the field arithmetic, this
// package borrows gf128/polyval and changes variables at its boundary:
// reverse the key and each block going in, reverse the digest coming
// out.
package ghash

import (
	"fmt"

	"github.com/uhfcore/uhf/gf128"
	"github.com/uhfcore/uhf/polyval"
)

// Ghash is a running GHASH computation.
type Ghash struct {
	inner *polyval.Polyval
}

// New returns a Ghash keyed with h, the 16-byte GCM hash subkey (the
// block-cipher encryption of the all-zero block under the cipher key).
func New(h []byte) (*Ghash, error) {
	if len(h) != 16 {
		return nil, fmt.Errorf("ghash: invalid key size: %d", len(h))
	}
	hp := gf128.FromBytes(h).Reverse().MulX()
	hb := hp.Bytes()
	inner, err := polyval.New(hb[:])
	if err != nil {
		return nil, err
	}
	return &Ghash{inner: inner}, nil
}

// Size returns the size of a GHASH digest.
func (g *Ghash) Size() int { return 16 }

// BlockSize returns the size of a GHASH block.
func (g *Ghash) BlockSize() int { return 16 }

// Reset clears the running accumulator back to zero.
func (g *Ghash) Reset() { g.inner.Reset() }

// Update absorbs one or more whole 16-byte blocks. Update panics if
// len(blocks) is not a positive multiple of the block size.
func (g *Ghash) Update(blocks []byte) {
	if len(blocks) == 0 || len(blocks)%16 != 0 {
		panic("ghash: invalid block length")
	}
	rev := make([]byte, len(blocks))
	for i := 0; i < len(blocks); i += 16 {
		b := gf128.FromBytes(blocks[i : i+16]).Reverse().Bytes()
		copy(rev[i:i+16], b[:])
	}
	g.inner.Update(rev)
}

// Sum appends the current digest to b and returns the resulting slice.
// It does not change the underlying hash state.
func (g *Ghash) Sum(b []byte) []byte {
	digest := g.inner.Sum(nil)
	var e [16]byte
	copy(e[:], digest)
	out := gf128.FromBytes(e[:]).Reverse().Bytes()
	return append(b, out[:]...)
}

// Zero overwrites the key, its precomputed powers, and the running
// accumulator.
func (g *Ghash) Zero() { g.inner.Zero() }

// Sum computes GHASH(h, blocks) in one call. blocks must be a multiple
// of 16 bytes, already zero-padded by the caller if needed; empty blocks
// yield the all-zero tag.
func Sum(h, blocks []byte) ([16]byte, error) {
	g, err := New(h)
	if err != nil {
		return [16]byte{}, err
	}
	if len(blocks) > 0 {
		g.Update(blocks)
	}
	var out [16]byte
	copy(out[:], g.Sum(nil))
	return out, nil
}
