package render

import "math"

const (
	// HexSides is the number of polygon sides drawn per cell.
	HexSides = 6
	// HexRotation rotates each hexagon so that it stands on a flat edge.
	HexRotation = 30.0
)

// Layout places grid cells on a sheared hexagon tiling. Rows are offset by
// half a cell each, so the tiling leans right; cells pushed past the right
// edge of the window are drawn one grid width to the left instead.
type Layout struct {
	CellSize    float64
	WindowWidth float64
	Columns     int
}

// NewLayout returns a layout for hexagons of the given radius in pixels.
func NewLayout(cellSize, windowWidth, columns int) Layout {
	return Layout{CellSize: float64(cellSize), WindowWidth: float64(windowWidth), Columns: columns}
}

// GridSizeFor returns how many columns and rows cover a window.
func GridSizeFor(windowW, windowH, cellSize int) (cols, rows int) {
	return windowW/cellSize + 1, windowH/cellSize + 1
}

// Apothem is the distance from a hexagon centre to the middle of a side.
func (l Layout) Apothem() float64 {
	s := l.CellSize
	return math.Sqrt(s*s - (s/2)*(s/2))
}

// Center returns the pixel centre of the cell at (row, col).
func (l Layout) Center(row, col int) (x, y float64) {
	step := 2 * l.Apothem()
	shear := float64(row) * step * math.Cos(-60*math.Pi/180)
	x = shear + float64(col)*step
	if x > l.WindowWidth+l.CellSize {
		x = shear + float64(col-l.Columns)*step
	}
	y = float64(row) * step * math.Sin(60*math.Pi/180)
	return x, y
}

// Vertices returns the corners of a regular polygon around (cx, cy), starting
// at rotation degrees and proceeding clockwise in screen space.
func Vertices(cx, cy, radius, rotation float64) [HexSides][2]float64 {
	var out [HexSides][2]float64
	angle := rotation * math.Pi / 180
	for i := range out {
		out[i] = [2]float64{cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius}
		angle += 2 * math.Pi / HexSides
	}
	return out
}
