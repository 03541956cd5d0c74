// Package sweep runs many headless Game of Life boards and summarises how
// each one evolves.
package sweep

import (
	"context"
	"hash/maphash"
	"sort"

	"golang.org/x/sync/errgroup"

	"hexlife/pkg/core"
	"hexlife/pkg/sims/life"
)

// Scenario is one board to simulate.
type Scenario struct {
	Config life.Config
	Seed   int64
	Steps  int
}

// Result summarises a finished scenario.
type Result struct {
	Scenario Scenario

	Initial    int
	Final      int
	Peak       int
	Generation int
	// SettledAt is the first generation whose board repeats an earlier one,
	// or -1 when no repeat was seen. Period is the repeat distance.
	SettledAt int
	Period    int
}

// Extinct reports whether the board died out.
func (r Result) Extinct() bool { return r.Final == 0 }

// Scenarios enumerates density x seed scenarios sharing base.
func Scenarios(base life.Config, densities []float64, seeds []int64, steps int) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, s := range seeds {
			cfg := base
			cfg.Density = d
			out = append(out, Scenario{Config: cfg, Seed: s, Steps: steps})
		}
	}
	return out
}

// Run simulates every scenario on up to workers goroutines. Results keep
// the order of scenarios. Cancelling ctx stops work between generations.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, sc Scenario) (Result, error) {
	sim, err := life.NewWithConfig(sc.Config)
	if err != nil {
		return Result{}, err
	}
	sim.Reset(sc.Seed)

	res := Result{Scenario: sc, SettledAt: -1}
	res.Initial = sim.Population()
	res.Peak = res.Initial

	hasher := maphash.MakeSeed()
	seen := map[uint64]int{boardHash(hasher, sim.Grid()): 0}
	for step := 1; step <= sc.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Step()
		pop := sim.Population()
		res.Peak = max(res.Peak, pop)
		h := boardHash(hasher, sim.Grid())
		if first, ok := seen[h]; ok {
			res.SettledAt = first
			res.Period = step - first
			break
		}
		seen[h] = step
	}
	res.Final = sim.Population()
	res.Generation = sim.Generation()
	return res, nil
}

func boardHash(seed maphash.Seed, g *core.Grid[life.Cell]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	g.Each(func(_ core.Coord, c life.Cell) { h.WriteByte(byte(c)) })
	return h.Sum64()
}

// Rank orders results by final population, largest first, then by seed.
func Rank(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Final != out[j].Final {
			return out[i].Final > out[j].Final
		}
		return out[i].Scenario.Seed < out[j].Scenario.Seed
	})
	return out
}
