package life

import (
	"errors"
	"fmt"
	"strconv"
)

// Seed modes understood by Seeder.
const (
	SeedRandom = "random"
	SeedNoise  = "noise"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("life: invalid config")

// Config holds parameters for the Game of Life simulation.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	SeedMode   string  `yaml:"seed_mode"`
	Density    float64 `yaml:"density"`
	NoiseScale float64 `yaml:"noise_scale"`
}

// DefaultConfig matches an 800x600 window of 6px cells.
func DefaultConfig() Config {
	return Config{Width: 134, Height: 101, SeedMode: SeedRandom, Density: 0.5, NoiseScale: 0.12}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g outside [0,1]", ErrInvalidConfig, c.Density)
	case c.NoiseScale <= 0:
		return fmt.Errorf("%w: noise scale %g", ErrInvalidConfig, c.NoiseScale)
	case c.SeedMode != SeedRandom && c.SeedMode != SeedNoise:
		return fmt.Errorf("%w: unknown seed mode %q", ErrInvalidConfig, c.SeedMode)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: h=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["seed_mode"]; ok {
		c.SeedMode = v
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: density=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["noise_scale"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: noise_scale=%q: %v", ErrInvalidConfig, v, err)
		}
		c.NoiseScale = parsed
	}
	return c, c.Validate()
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"seed_mode":   c.SeedMode,
		"density":     strconv.FormatFloat(c.Density, 'f', -1, 64),
		"noise_scale": strconv.FormatFloat(c.NoiseScale, 'f', -1, 64),
	}
}
