package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

//go:generate go run asm.go -out ../gf128/backend_amd64.s -stubs ../gf128/stub_amd64.go -pkg gf128

// This tool regenerates gf128's PCLMULQDQ stub, targeting gf128, the
// shared GF(2^128) multiplication package POLYVAL and GHASH both build on.
//
// avo targets one architecture per invocation; the arm64 PMULL stub under
// backend_arm64.s is maintained by hand rather than regenerated here,
// since avo's NEON support does not cover PMULL at the time of writing.
func main() {
	Package("github.com/uhfcore/uhf/gf128")
	ConstraintExpr("amd64,gc,!purego")

	declareCtmul()

	Generate()
}

func declareCtmul() {
	TEXT("ctmulAsm", NOSPLIT, "func(z *ctmul128, x, y uint64)")
	Pragma("noescape")

	z := Load(Param("z"), GP64())
	x := Load(Param("x"), XMM())
	y := Load(Param("y"), XMM())
	PCLMULQDQ(U8(0x00), x, y)
	MOVOU(y, Mem{Base: z})

	RET()
}
