//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "isoview needs the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/isoview` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless output use ./cmd/isoplot.")
	os.Exit(2)
}
