package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hexlife/pkg/sims/life"
)

func smallConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	return cfg
}

func TestScenarios(t *testing.T) {
	got := Scenarios(smallConfig(), []float64{0.2, 0.4}, []int64{1, 2, 3}, 10)
	if len(got) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(got))
	}
	if got[0].Config.Density != 0.2 || got[5].Config.Density != 0.4 || got[5].Seed != 3 {
		t.Fatalf("unexpected ordering: %+v", got)
	}
}

func TestRunEmptyAndFullBoards(t *testing.T) {
	scenarios := Scenarios(smallConfig(), []float64{0, 1}, []int64{1}, 20)
	results, err := Run(context.Background(), scenarios, 2)
	if err != nil {
		t.Fatal(err)
	}

	empty := results[0]
	if !empty.Extinct() || empty.SettledAt != 0 || empty.Period != 1 || empty.Generation != 1 {
		t.Fatalf("empty board: %+v", empty)
	}

	// Every cell of a full board has eight neighbours, so all die at once.
	full := results[1]
	if full.Initial != 16*12 || full.Peak != 16*12 {
		t.Fatalf("full board initial=%d peak=%d", full.Initial, full.Peak)
	}
	if !full.Extinct() || full.SettledAt != 1 || full.Period != 1 {
		t.Fatalf("full board: %+v", full)
	}
}

func TestRunDeterministic(t *testing.T) {
	scenarios := Scenarios(smallConfig(), []float64{0.3, 0.5}, []int64{4, 5}, 60)
	a, err := Run(context.Background(), scenarios, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), scenarios, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("worker count changed results (-serial +parallel):\n%s", diff)
	}
	for i, r := range a {
		if r.Scenario != scenarios[i] {
			t.Fatalf("result %d out of order", i)
		}
		if r.Generation > r.Scenario.Steps {
			t.Fatalf("result %d ran %d generations for %d steps", i, r.Generation, r.Scenario.Steps)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Scenarios(smallConfig(), []float64{0.5}, []int64{1}, 100), 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.SeedMode = "spiral"
	_, err := Run(context.Background(), []Scenario{{Config: cfg, Seed: 1, Steps: 1}}, 1)
	if !errors.Is(err, life.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRank(t *testing.T) {
	in := []Result{
		{Scenario: Scenario{Seed: 2}, Final: 5},
		{Scenario: Scenario{Seed: 1}, Final: 9},
		{Scenario: Scenario{Seed: 0}, Final: 5},
	}
	got := Rank(in)
	seeds := []int64{got[0].Scenario.Seed, got[1].Scenario.Seed, got[2].Scenario.Seed}
	if diff := cmp.Diff([]int64{1, 0, 2}, seeds); diff != "" {
		t.Fatalf("rank order (-want +got):\n%s", diff)
	}
	if in[0].Scenario.Seed != 2 {
		t.Fatal("Rank mutated its input")
	}
}
