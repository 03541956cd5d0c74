package life

import (
	"fmt"
	"math"
	"slices"

	"github.com/aquilax/go-perlin"

	"hexlife/pkg/core"
)

// Perlin octave settings.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// RandomSeeder makes each cell Alive with probability density.
func RandomSeeder(rng *core.RNG, density float64) func(core.Coord) Cell {
	return func(core.Coord) Cell {
		if rng.Chance(density) {
			return Alive
		}
		return Dead
	}
}

// NoiseSeeder samples 2D Perlin noise over a w*h grid and marks the highest
// density fraction of cells Alive, giving clustered seeds.
func NoiseSeeder(w, h int, seed int64, scale, density float64) func(core.Coord) Cell {
	switch {
	case density <= 0 || w <= 0 || h <= 0:
		return func(core.Coord) Cell { return Dead }
	case density >= 1:
		return func(core.Coord) Cell { return Alive }
	}

	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	field := make([]float64, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			// Offset by half a cell so samples never land on lattice points,
			// where Perlin noise is always zero.
			field[row*w+col] = p.Noise2D((float64(col)+0.5)*scale, (float64(row)+0.5)*scale)
		}
	}
	sorted := slices.Clone(field)
	slices.Sort(sorted)
	k := int(math.Round(density * float64(len(sorted))))
	if k == 0 {
		return func(core.Coord) Cell { return Dead }
	}
	threshold := sorted[len(sorted)-k]

	return func(c core.Coord) Cell {
		row := (c.Row%h + h) % h
		col := (c.Col%w + w) % w
		if field[row*w+col] >= threshold {
			return Alive
		}
		return Dead
	}
}

// Seeder returns the seed function selected by cfg.SeedMode.
func Seeder(cfg Config, seed int64) (func(core.Coord) Cell, error) {
	switch cfg.SeedMode {
	case SeedRandom:
		return RandomSeeder(core.NewRNG(seed), cfg.Density), nil
	case SeedNoise:
		return NoiseSeeder(cfg.Width, cfg.Height, seed, cfg.NoiseScale, cfg.Density), nil
	}
	return nil, fmt.Errorf("%w: unknown seed mode %q", ErrInvalidConfig, cfg.SeedMode)
}
