//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/garden-sim/internal/game"
	"github.com/appengine-ltd/garden-sim/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		mapSize     int
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 picks a random seed)")
	flag.IntVar(&mapSize, "map-size", game.DefaultMapWidth, "square map size in tiles")
	flag.Parse()

	if showVersion {
		fmt.Printf("Garden Sim %s (%s) %s\n", version, commit, date)
		return
	}

	worldCfg := game.DefaultWorldConfig()
	worldCfg.MapWidth = mapSize
	worldCfg.MapHeight = mapSize
	worldCfg.Seed = seed

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		World:     worldCfg,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
