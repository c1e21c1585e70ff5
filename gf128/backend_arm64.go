//go:build arm64 && gc && !purego

package gf128

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Darwin and iOS both require the PMULL extension as part of their
// baseline arm64 ABI, so there's nothing to probe for on those targets.
var haveAsm = runtime.GOOS == "darwin" ||
	runtime.GOOS == "ios" ||
	cpu.ARM64.HasPMULL

var backendTag = selectBackend()

func selectBackend() BackendTag {
	if haveAsm {
		return BackendPMULL
	}
	return BackendSoft
}

type ctmul128 struct {
	lo, hi uint64
}

//go:noescape
func ctmulAsm(z *ctmul128, x, y uint64)

func ctmul(x, y uint64) (hi, lo uint64) {
	if haveAsm {
		var z ctmul128
		ctmulAsm(&z, x, y)
		return z.hi, z.lo
	}
	return ctmulGeneric(x, y)
}
