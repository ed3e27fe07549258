package emotion

import (
	"fmt"
	"strings"

	"dorian-ca/internal/core"
	pcore "dorian-ca/pkg/core"
)

// World adapts a Grid to the core.Sim contract. It owns the random source
// and the generation counter.
type World struct {
	name       string
	grid       *Grid
	rng        *pcore.RNG
	seed       int64
	generation int
	display    []uint8
}

// NewWorld builds a world from cfg and seeds its center.
func NewWorld(name string, cfg Config) (*World, error) {
	rng := pcore.NewRNG(cfg.Seed)
	g, err := NewGrid(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	w := &World{
		name:    name,
		grid:    g,
		rng:     rng,
		seed:    cfg.Seed,
		display: make([]uint8, len(g.cells)),
	}
	g.Reset(rng)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Seed returns the seed used by the last reset.
func (w *World) Seed() int64 { return w.seed }

// Grid exposes the underlying grid.
func (w *World) Grid() *Grid { return w.grid }

// Generation returns the number of steps since the last reset.
func (w *World) Generation() int { return w.generation }

// Reset reseeds the random source and restarts from a seeded center. A zero
// seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.grid.cfg.Seed
	}
	w.seed = effective
	w.rng.Reseed(effective)
	w.grid.Reset(w.rng)
	w.generation = 0
}

// Step advances one generation.
func (w *World) Step() {
	w.grid.Step(w.rng)
	w.generation++
}

// SeedAt activates the seed square around (x, y).
func (w *World) SeedAt(x, y int) {
	w.grid.Seed(x, y, w.grid.cfg.Params.SeedRadius, w.rng)
}

// Cells exposes one display value per cell: 0 for dead, kind+1 for alive.
func (w *World) Cells() []uint8 {
	for i := range w.grid.cells {
		w.display[i] = displayValue(&w.grid.cells[i])
	}
	return w.display
}

// Stats summarizes the current generation.
func (w *World) Stats() Stats {
	s := Summarize(w.grid)
	s.Generation = w.generation
	return s
}

// Frame returns the draw batches for the current generation.
func (w *World) Frame(cellW, cellH float64) []core.DrawBatch {
	return Batches(w.grid, cellW, cellH)
}

// StatusLines renders a summary for HUDs and terminals.
func (w *World) StatusLines() []string {
	return FormatStats(w.Stats(), w.grid.Zones())
}

// ZoneIndex returns the zone table index covering (x, y).
func (w *World) ZoneIndex(x, y int) int { return w.grid.ZoneIndex(x, y) }

// ZoneCount returns the number of zones.
func (w *World) ZoneCount() int { return len(w.grid.Zones()) }

// FormatStats renders s as short human readable lines.
func FormatStats(s Stats, zones []Zone) []string {
	top := s.Top(3)
	names := make([]string, len(top))
	for i, k := range top {
		names[i] = k.String()
	}
	topLine := "-"
	if len(names) > 0 {
		topLine = strings.Join(names, ", ")
	}
	lines := []string{
		fmt.Sprintf("Generation  %d", s.Generation),
		fmt.Sprintf("Active      %d", s.ActiveCells),
		fmt.Sprintf("Dominant    %s", s.Dominant),
		fmt.Sprintf("Energy      %d%%", s.EnergyLevel()),
		fmt.Sprintf("Top         %s", topLine),
	}
	for i, z := range zones {
		if i < len(s.ZoneActive) {
			lines = append(lines, fmt.Sprintf("%-11s %d", z.Name, s.ZoneActive[i]))
		}
	}
	return lines
}

func mustWorld(name string, cfg Config) *World {
	w, err := NewWorld(name, cfg)
	if err != nil {
		panic(err)
	}
	return w
}

func init() {
	core.Register("dorian", func(cfg map[string]string) core.Sim {
		return mustWorld("dorian", FromMap(cfg))
	})
	core.Register("canvas", func(cfg map[string]string) core.Sim {
		return mustWorld("canvas", ApplyMap(CanvasConfig(), cfg))
	})
}
