package life

import "hexlife/pkg/core"

// Cell is the state of a single Game of Life cell.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// MooreNeighbourhood lists the eight offsets around a cell, excluding itself.
var MooreNeighbourhood = [8]struct{ DR, DC int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbours counts the live cells around c. Edges wrap.
func Neighbours(g *core.Grid[Cell], c core.Coord) int {
	alive := 0
	for _, d := range MooreNeighbourhood {
		if g.At(c.Add(d.DR, d.DC)) == Alive {
			alive++
		}
	}
	return alive
}

// Next applies B3/S23 to a cell with the given number of live neighbours.
func Next(cell Cell, alive int) Cell {
	switch {
	case cell == Dead && alive == 3:
		return Alive
	case cell == Alive && (alive == 2 || alive == 3):
		return Alive
	}
	return Dead
}

// Rule is the Game of Life transition for core.Grid.Step.
func Rule(g *core.Grid[Cell], c core.Coord) Cell {
	return Next(g.At(c), Neighbours(g, c))
}
