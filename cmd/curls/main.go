//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"curls/internal/app"
	"curls/internal/core"
	_ "curls/internal/sims/curls"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Fatalf("start viewer: %v", err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("curls - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
