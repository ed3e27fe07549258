package ui

import (
	"image/color"

	"dorian-ca/internal/core"
)

// zoneTints holds the translucent overlay color of each zone, cycling when
// there are more zones than entries.
var zoneTints = []color.RGBA{
	{R: 40, G: 110, B: 70, A: 70},
	{R: 140, G: 40, B: 40, A: 70},
	{R: 50, G: 70, B: 150, A: 70},
	{R: 150, G: 120, B: 40, A: 70},
}

func zoneTint(i int) color.RGBA {
	if i < 0 {
		return color.RGBA{}
	}
	return zoneTints[i%len(zoneTints)]
}

// fillZoneMask writes one premultiplied RGBA pixel per cell of the zone
// tint covering it. dst must hold 4*W*H bytes.
func fillZoneMask(dst []byte, zp core.ZoneProvider, size core.Size) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := zoneTint(zp.ZoneIndex(x, y))
			o := 4 * (y*size.W + x)
			a := uint16(c.A)
			dst[o+0] = byte(uint16(c.R) * a / 255)
			dst[o+1] = byte(uint16(c.G) * a / 255)
			dst[o+2] = byte(uint16(c.B) * a / 255)
			dst[o+3] = c.A
		}
	}
}
