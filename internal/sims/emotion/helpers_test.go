package emotion

import "testing"

// scriptedSource replays fixed draws. Once exhausted it returns draws that
// never trigger a birth.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if s.fi >= len(s.floats) {
		return 0.999
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

func newTestGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	g, err := NewGrid(cfg, &scriptedSource{})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func setAlive(g *Grid, x, y int, k Kind) *Cell {
	c := g.Cell(x, y)
	c.ignite(k, &g.cfg.Params)
	return c
}

func liveNeighbors(g *Grid, x, y int) int {
	n := 0
	for _, c := range g.NeighborsOf(x, y) {
		if c.Alive {
			n++
		}
	}
	return n
}
