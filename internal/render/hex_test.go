package render

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestGridSizeFor(t *testing.T) {
	cols, rows := GridSizeFor(800, 600, 6)
	if cols != 134 || rows != 101 {
		t.Fatalf("GridSizeFor(800, 600, 6)=%d,%d", cols, rows)
	}
}

func TestLayoutCenters(t *testing.T) {
	l := NewLayout(6, 800, 134)
	d := math.Sqrt(27)
	if !near(l.Apothem(), d) {
		t.Fatalf("apothem=%f, expected %f", l.Apothem(), d)
	}

	cases := []struct {
		row, col int
		x, y     float64
	}{
		{0, 0, 0, 0},
		{0, 1, 2 * d, 0},
		{1, 0, d, 9},
		{2, 3, 8 * d, 18},
	}
	for _, tc := range cases {
		x, y := l.Center(tc.row, tc.col)
		if !near(x, tc.x) || !near(y, tc.y) {
			t.Fatalf("Center(%d,%d)=(%f,%f), expected (%f,%f)", tc.row, tc.col, x, y, tc.x, tc.y)
		}
	}
}

func TestLayoutWrapsPastRightEdge(t *testing.T) {
	l := NewLayout(6, 800, 134)
	d := l.Apothem()
	x, _ := l.Center(100, 100)
	if want := 100*d + float64(100-134)*2*d; !near(x, want) {
		t.Fatalf("x=%f, expected wrapped %f", x, want)
	}
	if x > l.WindowWidth+l.CellSize {
		t.Fatalf("wrapped centre %f still beyond the window", x)
	}
}

func TestVertices(t *testing.T) {
	v := Vertices(10, 20, 6, HexRotation)
	if !near(v[0][0], 10+3*math.Sqrt(3)) || !near(v[0][1], 23) {
		t.Fatalf("first vertex=%v", v[0])
	}
	for i, p := range v {
		if r := math.Hypot(p[0]-10, p[1]-20); !near(r, 6) {
			t.Fatalf("vertex %d at distance %f", i, r)
		}
	}
	if !near(v[3][0], 10-3*math.Sqrt(3)) || !near(v[3][1], 17) {
		t.Fatalf("opposite vertex=%v", v[3])
	}
}
