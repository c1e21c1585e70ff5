//go:build !amd64 || !gc || purego

package poly1305

var backendTag = BackendSoft

func (p *Poly1305) absorbFull(m []byte) {
	p.blocks(m, len(m))
}
