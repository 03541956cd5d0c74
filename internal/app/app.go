//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"hexlife/internal/core"
	"hexlife/internal/render"
	"hexlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	cfg     *Config
	control *Control
	pacer   *core.FixedStep
	hex     *render.HexPainter
	squares *render.GridPainter
	hud     *ui.HUD
	log     *slog.Logger

	showHUD bool
	seed    int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, seed int64, log *slog.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		cfg:     cfg,
		control: NewControl(),
		pacer:   core.NewFixedStep(cfg.TPS),
		hud:     ui.NewHUD(sim),
		log:     log,
		seed:    seed,
	}
	switch cfg.Shape {
	case ShapeSquare:
		g.squares = render.NewGridPainter(size.W, size.H)
	default:
		g.hex = render.NewHexPainter(render.NewLayout(cfg.CellSize, cfg.Width, size.W))
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.log.Debug("board reset", "seed", seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	in := Input{
		ToggleMode: inpututil.IsKeyJustPressed(ebiten.KeyS),
		StepOnce:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Reset:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Reseed:     inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	before := g.control.Mode()
	act := g.control.Tick(in, g.pacer.ShouldStep)
	if mode := g.control.Mode(); mode != before {
		g.log.Debug("run mode changed", "mode", mode.String(), "generation", g.sim.Generation())
	}

	switch {
	case act.Reseed:
		g.Reset(time.Now().UnixNano())
	case act.Reset:
		g.Reset(g.seed)
	}
	for i := 0; i < act.Steps; i++ {
		g.sim.Step()
	}

	if g.showHUD {
		g.hud.Update(g.control.Mode().String())
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if g.squares != nil {
		g.squares.Draw(screen, g.cfg.CellSize, g.sim.Alive)
	} else {
		g.hex.Draw(screen, size.W, size.H, g.sim.Alive)
	}
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
