//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// hexBatch keeps each DrawTriangles call within uint16 index range.
const hexBatch = 65535 / (HexSides + 1)

// AliveFunc reports whether the cell at (row, col) should be drawn lit.
type AliveFunc func(row, col int) bool

// HexPainter fills one hexagon per live cell on a blue background.
type HexPainter struct {
	layout Layout
	src    *ebiten.Image
	vs     []ebiten.Vertex
	is     []uint16
}

// NewHexPainter allocates a painter for the given layout.
func NewHexPainter(layout Layout) *HexPainter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &HexPainter{
		layout: layout,
		src:    base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints a w*h grid. Dead cells are left as background.
func (p *HexPainter) Draw(dst *ebiten.Image, w, h int, alive AliveFunc) {
	dst.Fill(Blue)
	p.vs, p.is = p.vs[:0], p.is[:0]
	n := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if !alive(row, col) {
				continue
			}
			cx, cy := p.layout.Center(row, col)
			p.appendHex(cx, cy)
			n++
			if n == hexBatch {
				p.flush(dst)
				n = 0
			}
		}
	}
	p.flush(dst)
}

func (p *HexPainter) appendHex(cx, cy float64) {
	base := uint16(len(p.vs))
	p.vs = append(p.vs, vertex(cx, cy))
	for _, v := range Vertices(cx, cy, p.layout.CellSize, HexRotation) {
		p.vs = append(p.vs, vertex(v[0], v[1]))
	}
	for i := uint16(1); i <= HexSides; i++ {
		next := i%HexSides + 1
		p.is = append(p.is, base, base+i, base+next)
	}
}

func (p *HexPainter) flush(dst *ebiten.Image) {
	if len(p.is) == 0 {
		return
	}
	dst.DrawTriangles(p.vs, p.is, p.src, &ebiten.DrawTrianglesOptions{})
	p.vs, p.is = p.vs[:0], p.is[:0]
}

func vertex(x, y float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 1, SrcY: 1,
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}

// GridPainter draws one scaled square pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw uploads the current generation into the painter image and draws it.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int, alive AliveFunc) {
	fillBinaryRGBA(gp.buf, gp.w, gp.h, alive, White, Blue)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
