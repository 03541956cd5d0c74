package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"hexlife/internal/render"
)

// Cell shapes understood by the painter.
const (
	ShapeHex    = "hex"
	ShapeSquare = "square"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const usageHeader = `Hexagonal Automata

USAGE:
  ca [FLAGS] [AUTOMATON]

AUTOMATON:
  Cellular automaton to run (gol: Game of Life). Default gol.

KEYS:
  S      toggle single-step / running
  Enter  advance one generation while single-stepping
  R      reset with the same seed
  N      reset with a fresh seed
  H      toggle the HUD
  Q, Esc quit

FLAGS:
`

// Config represents the command-line parameters for the application.
type Config struct {
	Automaton string  `yaml:"automaton"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	CellSize  int     `yaml:"cell_size"`
	Resizable bool    `yaml:"resizable"`
	Shape     string  `yaml:"shape"`
	TPS       int     `yaml:"tps"`
	Seed      int64   `yaml:"seed"`
	SeedMode  string  `yaml:"seed_mode"`
	Density   float64 `yaml:"density"`
	LogLevel  string  `yaml:"log_level"`

	// File is the YAML file the defaults were read from, if any.
	File string `yaml:"-"`
	// Extra holds positional arguments that were not consumed.
	Extra []string `yaml:"-"`
}

// NewConfig returns a Config populated with the default window.
func NewConfig() *Config {
	return &Config{
		Automaton: "gol",
		Width:     800,
		Height:    600,
		CellSize:  6,
		Shape:     ShapeHex,
		TPS:       60,
		SeedMode:  "random",
		Density:   0.5,
		LogLevel:  "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell_size", c.CellSize, "cell size (hexagon centre to corner)")
	fs.BoolVar(&c.Resizable, "resizable", c.Resizable, "use a resizable window")
	fs.BoolVar(&c.Resizable, "r", c.Resizable, "use a resizable window (shorthand)")
	fs.StringVar(&c.Shape, "shape", c.Shape, "cell shape: hex or square")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board reset, 0 picks one from the clock")
	fs.StringVar(&c.SeedMode, "seed_mode", c.SeedMode, "initial board: random or noise")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells seeded alive")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.File, "config", c.File, "YAML file with defaults; flags take precedence")
}

// LoadConfigFile overlays the YAML document at path onto c.
func LoadConfigFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// Parse reads args into a Config. Defaults come from NewConfig, then from
// the -config file when given, then from the remaining flags. flag.ErrHelp is
// returned unwrapped after usage is printed.
func Parse(args []string, out io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := newFlagSet(cfg, out)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		file := cfg.File
		cfg = NewConfig()
		if err := LoadConfigFile(file, cfg); err != nil {
			return nil, err
		}
		cfg.File = file
		fs = newFlagSet(cfg, out)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Automaton = rest[0]
		cfg.Extra = rest[1:]
	}
	return cfg, cfg.Validate()
}

func newFlagSet(cfg *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usageHeader)
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	return fs
}

// Validate rejects sizes below one and unknown enumerations.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"cell_size", c.CellSize},
		{"tps", c.TPS},
	} {
		if f.value < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.Shape != ShapeHex && c.Shape != ShapeSquare {
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, c.Shape)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// GridSize returns the number of columns and rows the window holds.
func (c *Config) GridSize() (cols, rows int) {
	if c.Shape == ShapeSquare {
		return max(c.Width/c.CellSize, 1), max(c.Height/c.CellSize, 1)
	}
	return render.GridSizeFor(c.Width, c.Height, c.CellSize)
}

// SimConfig renders the options a sim factory understands.
func (c *Config) SimConfig() map[string]string {
	cols, rows := c.GridSize()
	return map[string]string{
		"w":         strconv.Itoa(cols),
		"h":         strconv.Itoa(rows),
		"seed_mode": c.SeedMode,
		"density":   strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}
