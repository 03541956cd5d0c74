package ui

import (
	"fmt"
	"strings"

	"hexlife/internal/core"
)

// Lines formats the HUD text for a sim: a title, the run mode and one line
// per reported parameter.
func Lines(sim core.Sim, mode string) []string {
	lines := []string{fmt.Sprintf("%s [%s]", strings.ToUpper(sim.Name()), mode)}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return append(lines, fmt.Sprintf("generation %d", sim.Generation()))
	}
	for _, g := range provider.Parameters().Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
		}
	}
	return lines
}
