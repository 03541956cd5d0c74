//go:build ebiten

package ui

import (
	"image/color"

	"hexlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 220
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached text from the simulation.
func (h *HUD) Update(mode string) {
	if h == nil {
		return
	}
	h.lines = Lines(h.sim, mode)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	height := 2*panelPadding + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
