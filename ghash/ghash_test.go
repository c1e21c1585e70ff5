package ghash

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/uhfcore/uhf/internal/gcmref"
)

func unhex(s string) []byte {
	p, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return p
}

// TestGCMTestCase2 checks the hash subkey and ciphertext block from the
// widely-reproduced NIST GCM "Test Case 2" (AES-128, zero key, empty
// AAD), run through GHASH directly rather than the full AEAD. GCM's
// GHASH input is the ciphertext followed by the lengths block
// (len(A) = 0, len(C) = 128 bits), so both blocks are absorbed here.
func TestGCMTestCase2(t *testing.T) {
	h := unhex("66e94bd4ef8a2c3b884cfa59ca342b2e")
	ciphertext := unhex("0388dace60b6a392f328c2b971b2fe78")
	lengths := unhex("00000000000000000000000000000080")
	want := unhex("f38cbb1ad69223dcc3457ae5b6b0f885")

	got, err := Sum(h, append(ciphertext, lengths...))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("expected %x, got %x", want, got)
	}
}

// TestEmptyInput checks that GHASH of no blocks is the zero element.
func TestEmptyInput(t *testing.T) {
	g, err := New(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 16)
	if got := g.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("expected all-zero tag, got %x", got)
	}
}

// TestAgainstReference differentially tests this package against an
// independent implementation of GCM's GHASH field arithmetic
// (internal/gcmref), which shares no code with gf128/polyval, across
// random keys and random block counts.
func TestAgainstReference(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 500; i++ {
		key := make([]byte, 16)
		rng.Read(key)

		nblocks := rng.Intn(9) + 1
		blocks := make([]byte, nblocks*16)
		rng.Read(blocks)

		want, err := Sum(key, blocks)
		if err != nil {
			t.Fatal(err)
		}

		ref := gcmref.New(key)
		ref.Update(blocks)
		got := ref.Sum(nil)

		if !bytes.Equal(got, want[:]) {
			t.Fatalf("#%d: mismatch against reference: ghash=%x gcmref=%x", i, want, got)
		}
	}
}

// TestHornerConsistency mirrors polyval's split-point test: GHASH over
// blocks fed in one call must match the same blocks fed across any
// boundary, since GCM's AAD/ciphertext absorption happens incrementally.
func TestHornerConsistency(t *testing.T) {
	key := make([]byte, 16)
	key[2] = 9

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))

	for _, nblocks := range []int{1, 2, 3, 4, 5, 9} {
		buf := make([]byte, nblocks*16)
		rng.Read(buf)

		whole, _ := New(key)
		whole.Update(buf)
		want := whole.Sum(nil)

		for split := 0; split <= nblocks; split++ {
			g, _ := New(key)
			if split > 0 {
				g.Update(buf[:split*16])
			}
			if split < nblocks {
				g.Update(buf[split*16:])
			}
			if got := g.Sum(nil); !bytes.Equal(got, want) {
				t.Fatalf("nblocks=%d split=%d: expected %x, got %x", nblocks, split, want, got)
			}
		}
	}
}
