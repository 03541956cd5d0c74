package life

import (
	"strconv"

	simcore "hexlife/internal/core"
	"hexlife/pkg/core"
)

// Life runs Conway's Game of Life on a toroidal grid.
type Life struct {
	cfg  Config
	seed int64
	grid *core.Grid[Cell]
}

// New returns an all-dead Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return &Life{cfg: cfg, grid: core.NewGrid[Cell](w, h)}
}

// NewWithConfig validates cfg and returns an all-dead simulation.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, grid: core.NewGrid[Cell](cfg.Width, cfg.Height)}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "gol" }

// Size returns the grid dimensions.
func (l *Life) Size() simcore.Size { return simcore.Size{W: l.grid.Width(), H: l.grid.Height()} }

// Grid exposes the underlying grid.
func (l *Life) Grid() *core.Grid[Cell] { return l.grid }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Reset reseeds the board using the configured seed mode.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	seeder, err := Seeder(l.cfg, seed)
	if err != nil {
		// cfg was validated on construction.
		panic(err)
	}
	l.grid.Fill(seeder)
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.grid.Step(Rule) }

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap.
func (l *Life) Alive(row, col int) bool {
	return l.grid.At(core.Coord{Row: row, Col: col}) == Alive
}

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.grid.Generation() }

// Population counts live cells in the current generation.
func (l *Life) Population() int {
	n := 0
	l.grid.Each(func(_ core.Coord, c Cell) {
		if c == Alive {
			n++
		}
	})
	return n
}

// Parameters reports the HUD snapshot.
func (l *Life) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{
		{
			Name: "World",
			Params: []simcore.Parameter{
				intParam("w", "Width", l.grid.Width()),
				intParam("h", "Height", l.grid.Height()),
				{Key: "seed", Label: "Seed", Type: simcore.ParamTypeInt, Value: strconv.FormatInt(l.seed, 10)},
				{Key: "seed_mode", Label: "Seed mode", Type: simcore.ParamTypeString, Value: l.cfg.SeedMode},
				{Key: "density", Label: "Density", Type: simcore.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', -1, 64)},
			},
		},
		{
			Name: "Run",
			Params: []simcore.Parameter{
				intParam("generation", "Generation", l.Generation()),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) simcore.Parameter {
	return simcore.Parameter{
		Key:   key,
		Label: label,
		Type:  simcore.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func factory(cfg map[string]string) (simcore.Sim, error) {
	c, err := FromMap(cfg)
	if err != nil {
		return nil, err
	}
	l, err := NewWithConfig(c)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func init() {
	simcore.Register("gol", factory)
	simcore.Register("life", factory)
}
