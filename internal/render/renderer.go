//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Colours used for the board and the area around it.
var (
	AliveColor   color.Color = color.White
	DeadColor    color.Color = color.Black
	OutsideColor color.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// GridPainter updates a single RGBA image based on binary cell data.
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

// Blit uploads the provided cells into the painter image and draws it scaled
// with its top-left corner at (offX, offY). The rest of dst is filled with
// OutsideColor.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale, offX, offY int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, AliveColor, DeadColor)
	gp.img.WritePixels(gp.buf)

	dst.Fill(OutsideColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offX), float64(offY))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
