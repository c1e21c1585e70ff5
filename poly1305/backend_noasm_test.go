//go:build !amd64 || !gc || purego

package poly1305

import "testing"

func runTests(t *testing.T, fn func(t *testing.T)) {
	t.Run("soft", fn)
}
