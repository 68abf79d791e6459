//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/core"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for the LED matrix.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(core.Size, core.Size),
		buf: make([]byte, 4*core.Size*core.Size),
	}
}

// Blit uploads the grid into the painter image and draws it scaled so each
// LED covers scale x scale screen pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, on, off color.Color, scale int) {
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
