// Package fuzzutil holds the timer-bounded randomized-testing loop shared
// by this module's differential tests: run until a short timer fires,
// logging the iteration count so a shortened run under -short is visibly
// different from a full one.
package fuzzutil

import (
	"testing"
	"time"
)

// Run calls fn repeatedly until d has elapsed (or, under `go test -short`,
// until a fixed short budget has elapsed instead), logging how many
// iterations it managed. fn should perform one randomized trial and call
// t.Fatal on failure.
func Run(t *testing.T, d time.Duration, fn func()) {
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	for i := 0; ; i++ {
		select {
		case <-timer.C:
			t.Logf("iters: %d", i)
			return
		default:
		}
		fn()
	}
}
