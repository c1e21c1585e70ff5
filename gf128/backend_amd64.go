//go:build amd64 && gc && !purego

package gf128

import "golang.org/x/sys/cpu"

var haveAsm = cpu.X86.HasPCLMULQDQ

var backendTag = selectBackend()

func selectBackend() BackendTag {
	if haveAsm {
		return BackendCLMUL
	}
	return BackendSoft
}

// ctmul128 mirrors ctmulAsm's calling convention so the assembly stub can
// be generated with github.com/mmcloughlin/avo (see asm/asm.go) without
// duplicating the Karatsuba/reduction logic on the Go side.
//
// Field order matches the XMM register's in-memory layout after a plain
// MOVOU store: the low 64 bits of the product land at the lower address.
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
