package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"hexlife/internal/sweep"
	"hexlife/pkg/sims/life"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 134, "grid columns")
	height := flag.Int("h", 101, "grid rows")
	mode := flag.String("seed_mode", life.SeedRandom, "random or noise")
	densities := flag.String("densities", "0.1,0.2,0.3,0.4,0.5,0.6", "comma-separated seed densities")
	seeds := flag.Int("seeds", 8, "seeds per density, starting at 1")
	top := flag.Int("top", 10, "rows to print")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ds, err := parseFloats(*densities)
	if err != nil {
		log.Error("bad -densities", "err", err)
		os.Exit(2)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}

	base := life.DefaultConfig()
	base.Width, base.Height, base.SeedMode = *width, *height, *mode
	scenarios := sweep.Scenarios(base, ds, seedList, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *width, *height)
	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, *workers)
	if err != nil {
		log.Error("sweep failed", "err", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	extinct := 0
	for _, r := range results {
		if r.Extinct() {
			extinct++
		}
	}

	ranked := sweep.Rank(results)
	fmt.Printf("\nTop %d by final population (elapsed %s, %d/%d extinct):\n", min(*top, len(ranked)), elapsed.Round(time.Millisecond), extinct, len(results))
	for i := 0; i < len(ranked) && i < *top; i++ {
		r := ranked[i]
		settled := "no"
		if r.SettledAt >= 0 {
			settled = fmt.Sprintf("gen %d period %d", r.SettledAt, r.Period)
		}
		fmt.Printf("%2d) density=%.2f seed=%d initial=%d peak=%d final=%d gens=%d settled=%s\n",
			i+1, r.Scenario.Config.Density, r.Scenario.Seed, r.Initial, r.Peak, r.Final, r.Generation, settled)
	}
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return out, nil
}
