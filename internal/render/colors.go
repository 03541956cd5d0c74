package render

import "image/color"

// Palette used by both painters.
var (
	Blue  = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
