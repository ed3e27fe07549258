//go:build ebiten

package render

import (
	"image/color"

	"dorian-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws frame batches onto an offscreen ebiten image that is
// blitted to the screen each Draw.
type GridPainter struct {
	w, h       int
	img        *ebiten.Image
	background color.Color
}

// NewGridPainter allocates a painter for a w*h pixel surface.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:          w,
		h:          h,
		img:        ebiten.NewImage(max(w, 1), max(h, 1)),
		background: color.Black,
	}
}

// DrawFrame repaints the offscreen surface, one fill per rectangle grouped
// by color.
func (gp *GridPainter) DrawFrame(batches []core.DrawBatch) error {
	gp.img.Fill(gp.background)
	for _, b := range batches {
		for _, r := range b.Rects {
			vector.DrawFilledRect(gp.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.Color, false)
		}
	}
	return nil
}

// Blit draws the last frame onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

var _ core.FrameSink = (*GridPainter)(nil)
