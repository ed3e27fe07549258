//go:build ebiten

package ui

import (
	"dorian-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid.
type Overlay struct {
	sim       core.Sim
	scale     int
	showZones bool

	maskImg *ebiten.Image
	maskBuf []byte
	dirty   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, dirty: true}
}

// Update toggles overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		o.showZones = !o.showZones
	}
}

// Invalidate forces the zone mask to be rebuilt on the next draw.
func (o *Overlay) Invalidate() { o.dirty = true }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showZones {
		return
	}
	zp, ok := o.sim.(core.ZoneProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*size.W*size.H)
		o.dirty = true
	}
	if o.dirty {
		fillZoneMask(o.maskBuf, zp, size)
		o.maskImg.WritePixels(o.maskBuf)
		o.dirty = false
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
