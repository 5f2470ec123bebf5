//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"green-vs-red/internal/app"
	"green-vs-red/pkg/core"
	_ "green-vs-red/pkg/sims/greenred"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gvr: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("Green vs. Red (" + sim.Name() + ")")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))
	log.Printf("%dx%d grid, space pauses, n steps, r resets, t toggles the target marker", size.H, size.W)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
