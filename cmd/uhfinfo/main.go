// Command uhfinfo reports which backend each universal hash function in
// this module selected for the current process, mirroring the
// IsHardwareAccelerated() diagnostic hook found in hardware-accelerated
// cipher implementations: a small way for an operator to confirm a
// deployed binary actually got the fast path it expected.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/uhfcore/uhf/gf128"
	"github.com/uhfcore/uhf/poly1305"
)

func main() {
	verbose := flag.Bool("v", false, "also log backend selection through zap (it is printed either way)")
	flag.Parse()

	gf128Backend := gf128.Backend()
	poly1305Backend := poly1305.Backend()

	if *verbose {
		logger, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "uhfinfo: building logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		logger.Info("uhf backend selection",
			zap.String("gf128_backend", gf128Backend.String()),
			zap.String("poly1305_backend", poly1305Backend.String()),
		)
	}

	fmt.Printf("gf128 (polyval/ghash): %s\n", gf128Backend)
	fmt.Printf("poly1305: %s\n", poly1305Backend)
}
