//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Garden Sim %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Garden Sim requires the windowed build (cgo/raylib enabled).")
	os.Exit(1)
}
