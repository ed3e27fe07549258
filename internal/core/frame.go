package core

import "image/color"

// Rect is a fill rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// DrawBatch groups rectangles sharing one fill color.
type DrawBatch struct {
	Color color.RGBA
	Rects []Rect
}

// FrameSink consumes the draw instructions of one rendered frame. Batches
// arrive in paint order and rectangles never overlap.
type FrameSink interface {
	DrawFrame(batches []DrawBatch) error
}
