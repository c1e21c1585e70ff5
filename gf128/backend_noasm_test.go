//go:build (!amd64 && !arm64) || !gc || purego

package gf128

import "testing"

func runTests(t *testing.T, fn func(t *testing.T)) {
	t.Run("soft", fn)
}
