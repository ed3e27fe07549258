//go:build ebiten

package app

import (
	"time"

	"dorian-ca/internal/core"
	"dorian-ca/internal/render"
	"dorian-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the panel right of the grid.
const HUDWidth = 260

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		loop:    NewLoop(sim, cfg),
		painter: render.NewGridPainter(size.W*scale, size.H*scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
	}
	g.hud.SetStatus(g.loop.Status())
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.loop.Reset(seed)
	g.overlay.Invalidate()
	g.hud.SetStatus(g.loop.Status())
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
		g.hud.SetStatus(g.loop.Status())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.loop.Resume()
		g.hud.SetStatus(g.loop.Status())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.loop.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.loop.SeedAt(mx/g.scale, my/g.scale)
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	if g.loop.Frame() {
		g.hud.SetStatus(g.loop.Status())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if fs, ok := g.loop.Sim().(core.FrameSource); ok {
		s := float64(g.scale)
		_ = g.painter.DrawFrame(fs.Frame(s, s))
	}
	g.painter.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.loop.Sim().Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.loop.Sim().Size().W * g.scale }
