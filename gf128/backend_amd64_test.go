//go:build amd64 && gc && !purego

package gf128

import "testing"

func disableAsm(t *testing.T) {
	old := haveAsm
	t.Cleanup(func() { haveAsm = old })
	haveAsm = false
}

// runTests runs fn once against whichever backend this binary actually
// selected, and again with the assembly backend forced off, so that every
// property test exercises both the hardware and software code paths on
// capable hosts.
func runTests(t *testing.T, fn func(t *testing.T)) {
	if haveAsm {
		t.Run("clmul", fn)
	}
	t.Run("soft", func(t *testing.T) {
		disableAsm(t)
		fn(t)
	})
}
