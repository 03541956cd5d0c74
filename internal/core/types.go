package core

import "sort"

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim is the contract between an automaton and the window loop. Alive must
// report on a fully computed generation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Alive(row, col int) bool
	Generation() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
