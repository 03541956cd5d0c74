package ui

import (
	"slices"
	"testing"

	"hexlife/internal/core"
)

type stubSim struct{ gen int }

func (s *stubSim) Name() string        { return "stub" }
func (s *stubSim) Size() core.Size     { return core.Size{W: 2, H: 2} }
func (s *stubSim) Reset(int64)         {}
func (s *stubSim) Step()               { s.gen++ }
func (s *stubSim) Alive(int, int) bool { return false }
func (s *stubSim) Generation() int     { return s.gen }

type paramSim struct{ stubSim }

func (p *paramSim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Run",
		Params: []core.Parameter{{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: "4"}},
	}}}
}

func TestLinesWithoutParameters(t *testing.T) {
	s := &stubSim{gen: 3}
	got := Lines(s, "running")
	want := []string{"STUB [running]", "generation 3"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines=%q, expected %q", got, want)
	}
}

func TestLinesWithParameters(t *testing.T) {
	got := Lines(&paramSim{}, "single-step")
	want := []string{"STUB [single-step]", "Run", "  Generation   4"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines=%q, expected %q", got, want)
	}
}
