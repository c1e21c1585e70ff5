//go:build (!amd64 && !arm64) || !gc || purego

package gf128

var backendTag = BackendSoft

func ctmul(x, y uint64) (hi, lo uint64) {
	return ctmulGeneric(x, y)
}
