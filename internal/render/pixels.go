package render

import (
	"image"
	"image/color"
	"math"

	"dorian-ca/internal/core"
)

// fillRGBA paints buf (RGBA, stride 4*w) with the background color.
func fillRGBA(buf []byte, bg color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}
}

// rasterize paints the batches into img. Rectangle edges are rounded to the
// nearest pixel so fractional cell sizes tile without gaps.
func rasterize(img *image.RGBA, batches []core.DrawBatch) {
	bounds := img.Bounds()
	for _, b := range batches {
		for _, r := range b.Rects {
			x0 := max(int(math.Round(r.X)), bounds.Min.X)
			y0 := max(int(math.Round(r.Y)), bounds.Min.Y)
			x1 := min(int(math.Round(r.X+r.W)), bounds.Max.X)
			y1 := min(int(math.Round(r.Y+r.H)), bounds.Max.Y)
			for y := y0; y < y1; y++ {
				row := img.PixOffset(x0, y)
				for x := x0; x < x1; x++ {
					img.Pix[row+0] = b.Color.R
					img.Pix[row+1] = b.Color.G
					img.Pix[row+2] = b.Color.B
					img.Pix[row+3] = b.Color.A
					row += 4
				}
			}
		}
	}
}
