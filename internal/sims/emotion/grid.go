package emotion

import (
	"fmt"

	"dorian-ca/internal/core"
	pcore "dorian-ca/pkg/core"
)

// Grid is a fixed rectangular array of cells evolving in synchronous
// generations.
type Grid struct {
	cfg    Config
	bounds core.Bounds
	zones  ZoneMap

	cells  []Cell
	zoneOf []int

	// Snapshot of the previous generation read by Step.
	prevAlive []bool
	prevKind  []Kind

	nbuf []int
	live []Kind
}

// NewGrid validates cfg and allocates a grid of dead cells, each with a
// random emotion drawn from rng.
func NewGrid(cfg Config, rng pcore.Source) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	zm, err := cfg.ZoneMap()
	if err != nil {
		return nil, err
	}
	b := core.Bounds{W: cfg.Width, H: cfg.Height}
	total := b.Area()
	g := &Grid{
		cfg:       cfg,
		bounds:    b,
		zones:     zm,
		cells:     make([]Cell, total),
		zoneOf:    make([]int, total),
		prevAlive: make([]bool, total),
		prevKind:  make([]Kind, total),
		nbuf:      make([]int, 0, 8),
		live:      make([]Kind, 0, 8),
	}
	for i := range g.cells {
		x, y := b.Coords(i)
		c := &g.cells[i]
		c.X, c.Y = x, y
		c.Emotion = Kind(rng.IntN(NumKinds))
		c.dormant(&g.cfg.Params)
		g.zoneOf[i] = zm.Index(x, y, b.W, b.H)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.bounds.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.bounds.H }

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Params exposes the live rule parameters for in-place tuning.
func (g *Grid) Params() *Params { return &g.cfg.Params }

// Cells exposes the cells in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Cell returns the cell at (x, y), or nil outside the grid.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.bounds.Contains(x, y) {
		return nil
	}
	return &g.cells[g.bounds.Index(x, y)]
}

// ZoneAt returns the zone covering (x, y).
func (g *Grid) ZoneAt(x, y int) Zone {
	if !g.bounds.Contains(x, y) {
		return g.zones.ZoneOf(x, y, g.bounds.W, g.bounds.H)
	}
	return g.zones.Zones[g.zoneOf[g.bounds.Index(x, y)]]
}

// ZoneIndex returns the zone table index covering (x, y).
func (g *Grid) ZoneIndex(x, y int) int {
	if !g.bounds.Contains(x, y) {
		return g.zones.Index(x, y, g.bounds.W, g.bounds.H)
	}
	return g.zoneOf[g.bounds.Index(x, y)]
}

// Zones returns the zone table.
func (g *Grid) Zones() []Zone { return g.zones.Zones }

// NeighborsOf returns the Moore neighbors of (x, y) in row-major order.
// Edge and corner cells have fewer than eight.
func (g *Grid) NeighborsOf(x, y int) []*Cell {
	if !g.bounds.Contains(x, y) {
		return nil
	}
	idx := g.bounds.Neighbors(make([]int, 0, 8), x, y)
	out := make([]*Cell, len(idx))
	for i, n := range idx {
		out[i] = &g.cells[n]
	}
	return out
}

// Step advances one generation. Every cell sees its neighbors as they were
// before the step began.
func (g *Grid) Step(rng pcore.Source) {
	for i := range g.cells {
		g.prevAlive[i] = g.cells[i].Alive
		g.prevKind[i] = g.cells[i].Emotion
	}
	p := &g.cfg.Params
	w, h := g.bounds.W, g.bounds.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := &g.cells[idx]
			g.live = g.live[:0]
			if !c.Alive {
				g.nbuf = g.bounds.Neighbors(g.nbuf[:0], x, y)
				for _, n := range g.nbuf {
					if g.prevAlive[n] {
						g.live = append(g.live, g.prevKind[n])
					}
				}
			}
			c.evaluate(g.live, &g.zones.Zones[g.zoneOf[idx]], p, rng)
		}
	}
}

// Seed forces every cell within Chebyshev distance radius of (cx, cy) alive
// with a random emotion. The region is clipped to the grid.
func (g *Grid) Seed(cx, cy, radius int, rng pcore.Source) {
	x0, y0, x1, y1 := g.bounds.Square(cx, cy, radius)
	p := &g.cfg.Params
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.cells[g.bounds.Index(x, y)].ignite(Kind(rng.IntN(NumKinds)), p)
		}
	}
}

// Reset returns every cell to the dead starting state with an empty memory
// and seeds the center.
func (g *Grid) Reset(rng pcore.Source) {
	p := &g.cfg.Params
	for i := range g.cells {
		g.cells[i].dormant(p)
	}
	g.Seed(g.bounds.W>>1, g.bounds.H>>1, p.SeedRadius, rng)
}

// String renders a compact description used in logs.
func (g *Grid) String() string {
	return fmt.Sprintf("grid %dx%d (%d zones)", g.bounds.W, g.bounds.H, len(g.zones.Zones))
}
