package emotion

import (
	"image/color"
	"math"

	"dorian-ca/internal/core"
)

// DisplayColor returns the rendered color of an alive cell: the base color
// scaled by min(1, intensity*gain), truncated per channel.
func DisplayColor(c *Cell, gain float64) color.RGBA {
	base := c.Emotion.Color()
	fade := math.Min(1, c.Intensity*gain)
	return color.RGBA{
		R: scaleChannel(base.R, fade),
		G: scaleChannel(base.G, fade),
		B: scaleChannel(base.B, fade),
		A: 255,
	}
}

func scaleChannel(v uint8, fade float64) uint8 {
	out := float64(v) * fade
	if out > 255 {
		out = 255
	}
	if out < 0 {
		out = 0
	}
	return uint8(out)
}

// Batches groups the alive cells by display color into fill rectangles of
// cellW x cellH pixels. Batches are ordered by the first cell of each color in
// row-major order.
func Batches(g *Grid, cellW, cellH float64) []core.DrawBatch {
	gain := g.cfg.Params.BrightnessGain
	var batches []core.DrawBatch
	index := make(map[color.RGBA]int)
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Alive {
			continue
		}
		col := DisplayColor(c, gain)
		bi, ok := index[col]
		if !ok {
			bi = len(batches)
			index[col] = bi
			batches = append(batches, core.DrawBatch{Color: col})
		}
		batches[bi].Rects = append(batches[bi].Rects, core.Rect{
			X: float64(c.X) * cellW,
			Y: float64(c.Y) * cellH,
			W: cellW,
			H: cellH,
		})
	}
	return batches
}

// displayValue encodes a cell for palette renderers: 0 for dead, kind+1 for
// alive.
func displayValue(c *Cell) uint8 {
	if !c.Alive || !c.Emotion.Valid() {
		return 0
	}
	return uint8(c.Emotion) + 1
}
