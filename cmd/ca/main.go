//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"hexlife/internal/app"
	"hexlife/internal/core"
	_ "hexlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("bad arguments", "err", err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	if len(cfg.Extra) > 0 {
		log.Warn("unknown arguments left", "args", cfg.Extra)
	}

	factory, ok := core.Sims()[cfg.Automaton]
	if !ok {
		log.Error("unknown automaton", "name", cfg.Automaton, "available", core.Names())
		os.Exit(2)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Error("cannot build automaton", "name", cfg.Automaton, "err", err)
		os.Exit(2)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim.Reset(seed)
	size := sim.Size()
	log.Info("starting", "automaton", sim.Name(), "cols", size.W, "rows", size.H, "seed", seed, "shape", cfg.Shape)

	game := app.New(sim, cfg, seed, log)

	ebiten.SetWindowTitle("Hexagonal Automata — " + sim.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
