package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

//go:generate go run main.go -out ../../poly1305/backend_amd64.s -stubs ../../poly1305/stub_amd64.go -pkg poly1305

// This tool regenerates poly1305's VPMULUDQ stub. Unlike gf128's ctmulAsm,
// which wraps a single scalar PCLMULQDQ, this one operates on 4-lane
// vectors: it is the one hardware primitive the AVX2 Poly1305 backend
// builds on, with every carry and reduction step left in portable Go.
func main() {
	Package("github.com/uhfcore/uhf/poly1305")
	ConstraintExpr("amd64,gc,!purego")

	declareMulu32x4()

	Generate()
}

func declareMulu32x4() {
	TEXT("mulu32x4Asm", NOSPLIT, "func(dst *[4]uint64, x, y *[4]uint64)")
	Pragma("noescape")

	dst := Load(Param("dst"), GP64())
	x := Load(Param("x"), GP64())
	y := Load(Param("y"), GP64())

	vx := YMM()
	vy := YMM()
	vz := YMM()
	VMOVDQU(Mem{Base: x}, vx)
	VMOVDQU(Mem{Base: y}, vy)
	VPMULUDQ(vy, vx, vz)
	VMOVDQU(vz, Mem{Base: dst})
	VZEROUPPER()

	RET()
}
