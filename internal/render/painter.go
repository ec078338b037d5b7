//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/core"
)

// GridPainter keeps an RGBA image sized to the board and redraws it each
// frame. The image and buffer are reallocated whenever margin maintenance
// changes the board dimensions.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(rows, cols)
	return gp
}

func (gp *GridPainter) resize(rows, cols int) {
	gp.rows, gp.cols = rows, cols
	gp.buf = make([]byte, 4*rows*cols)
	gp.img = ebiten.NewImage(cols, rows)
}

// Blit uploads the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g.Rows() != gp.rows || g.Cols() != gp.cols {
		gp.resize(g.Rows(), g.Cols())
	}
	fillGridRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image in cells.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
