package render

import "image/color"

// fillBinaryRGBA writes one RGBA pixel per cell into buf in row-major order,
// using on for live cells and off otherwise.
func fillBinaryRGBA(buf []byte, w, h int, alive func(row, col int) bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			base := (row*w + col) * 4
			if alive(row, col) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
