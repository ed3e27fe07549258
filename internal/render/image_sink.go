package render

import (
	"image"
	"image/color"

	"dorian-ca/internal/core"
)

// ImageSink rasterizes frames into an in-memory RGBA image.
type ImageSink struct {
	img        *image.RGBA
	Background color.RGBA
}

// NewImageSink allocates a w*h pixel surface with a black background.
func NewImageSink(w, h int) *ImageSink {
	return &ImageSink{
		img:        image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))),
		Background: color.RGBA{A: 255},
	}
}

// DrawFrame clears the surface and paints the batches.
func (s *ImageSink) DrawFrame(batches []core.DrawBatch) error {
	fillRGBA(s.img.Pix, s.Background)
	rasterize(s.img, batches)
	return nil
}

// Image exposes the surface. It is overwritten by the next frame.
func (s *ImageSink) Image() *image.RGBA { return s.img }

var _ core.FrameSink = (*ImageSink)(nil)
