package render

import (
	"image/color"

	"golife/internal/core"
)

// fillGridRGBA converts the board's cells into RGBA pixels in buf, one
// pixel per cell in row-major order. buf must hold 4*rows*cols bytes.
func fillGridRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			base := i * 4
			if g.Alive(row, col) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			i++
		}
	}
}
