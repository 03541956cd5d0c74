package core

import "fmt"

// Coord addresses a cell by row and column. Any integer pair is valid; it is
// wrapped onto the torus before use.
type Coord struct {
	Row, Col int
}

// Add returns c offset by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord { return Coord{Row: c.Row + dr, Col: c.Col + dc} }

// Rule computes the next value of the cell at c from the current generation.
// It must only read through g.At.
type Rule[T any] func(g *Grid[T], c Coord) T

// Grid is a double-buffered toroidal grid stored in row-major order. Readers
// always see a complete generation; Step writes the inactive buffer and swaps.
type Grid[T any] struct {
	w, h int
	a, b []T
	bCur bool
	gen  int
}

// NewGrid allocates a grid with zero-valued cells. It panics when either
// dimension is not positive.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid[T]{w: w, h: h, a: make([]T, w*h), b: make([]T, w*h)}
}

// NewGridFunc allocates a grid and seeds every cell with seed.
func NewGridFunc[T any](w, h int, seed func(Coord) T) *Grid[T] {
	g := NewGrid[T](w, h)
	g.Fill(seed)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return g.w * g.h }

// Generation counts the steps taken since the last Fill.
func (g *Grid[T]) Generation() int { return g.gen }

// Wrap maps c onto the torus. Negative coordinates wrap from the far edge.
func (g *Grid[T]) Wrap(c Coord) Coord {
	c.Row = (c.Row%g.h + g.h) % g.h
	c.Col = (c.Col%g.w + g.w) % g.w
	return c
}

func (g *Grid[T]) index(c Coord) int {
	c = g.Wrap(c)
	return c.Row*g.w + c.Col
}

func (g *Grid[T]) cur() []T {
	if g.bCur {
		return g.b
	}
	return g.a
}

func (g *Grid[T]) nxt() []T {
	if g.bCur {
		return g.a
	}
	return g.b
}

// At returns the value of the cell at c in the current generation.
func (g *Grid[T]) At(c Coord) T { return g.cur()[g.index(c)] }

// Set overwrites the cell at c in the current generation. It is meant for
// seeding and editing between steps, never from inside a Rule.
func (g *Grid[T]) Set(c Coord, v T) { g.cur()[g.index(c)] = v }

// Fill seeds the current generation in row-major order and resets the
// generation counter.
func (g *Grid[T]) Fill(seed func(Coord) T) {
	cells := g.cur()
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			cells[row*g.w+col] = seed(Coord{Row: row, Col: col})
		}
	}
	g.gen = 0
}

// Step computes the next generation with rule and makes it current.
func (g *Grid[T]) Step(rule Rule[T]) {
	next := g.nxt()
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			next[row*g.w+col] = rule(g, Coord{Row: row, Col: col})
		}
	}
	g.bCur = !g.bCur
	g.gen++
}

// Each calls fn for every cell of the current generation in row-major order.
func (g *Grid[T]) Each(fn func(Coord, T)) {
	cells := g.cur()
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			fn(Coord{Row: row, Col: col}, cells[row*g.w+col])
		}
	}
}

// Snapshot returns a row-major copy of the current generation.
func (g *Grid[T]) Snapshot() []T {
	return append([]T(nil), g.cur()...)
}
