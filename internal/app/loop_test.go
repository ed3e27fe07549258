package app

import (
	"slices"
	"testing"

	"dorian-ca/internal/core"
)

type countingSim struct {
	steps  int
	resets []int64
	seeds  [][2]int
}

func (s *countingSim) Name() string { return "count" }
func (s *countingSim) Size() core.Size { return core.Size{W: 4, H: 4} }
func (s *countingSim) Reset(seed int64) {
	s.resets = append(s.resets, seed)
	s.steps = 0
}
func (s *countingSim) Step() { s.steps++ }
func (s *countingSim) Cells() []uint8 { return make([]uint8, 16) }
func (s *countingSim) SeedAt(x, y int) { s.seeds = append(s.seeds, [2]int{x, y}) }
func (s *countingSim) StatusLines() []string { return []string{"steps"} }

func newTestLoop(stepEvery, statsEvery int) (*Loop, *countingSim) {
	sim := &countingSim{}
	cfg := NewConfig()
	cfg.StepEvery = stepEvery
	cfg.StatsEvery = statsEvery
	return NewLoop(sim, cfg), sim
}

func TestLoopStepsOnCadence(t *testing.T) {
	l, sim := newTestLoop(4, 60)
	var fired []int
	for frame := 0; frame < 12; frame++ {
		if l.Frame() {
			fired = append(fired, frame)
		}
	}
	if !slices.Equal(fired, []int{0, 4, 8}) {
		t.Fatalf("fired on frames %v", fired)
	}
	if sim.steps != 3 {
		t.Fatalf("steps = %d", sim.steps)
	}
}

func TestLoopPauseAndStepOnce(t *testing.T) {
	l, sim := newTestLoop(1, 1)
	l.TogglePause()
	for i := 0; i < 5; i++ {
		l.Frame()
	}
	if sim.steps != 0 {
		t.Fatal("paused loop must not step")
	}
	l.StepOnce()
	if !l.Frame() || sim.steps != 1 {
		t.Fatal("StepOnce should run exactly one step while paused")
	}
	if l.Frame() {
		t.Fatal("StepOnce must not repeat")
	}
	if got := l.Status(); got[len(got)-1] != "Paused" {
		t.Fatalf("status = %v", got)
	}
	l.Resume()
	if !l.Frame() {
		t.Fatal("resumed loop should step")
	}
}

func TestLoopReset(t *testing.T) {
	l, sim := newTestLoop(2, 60)
	l.Frame()
	l.Frame()
	l.Reset(99)
	if l.Seed() != 99 || !slices.Equal(sim.resets, []int64{99}) {
		t.Fatalf("resets = %v", sim.resets)
	}
	if !l.Frame() {
		t.Fatal("first frame after reset should step")
	}
}

func TestLoopSeedAtBounds(t *testing.T) {
	l, sim := newTestLoop(1, 1)
	if !l.SeedAt(1, 2) {
		t.Fatal("in-bounds seed rejected")
	}
	if l.SeedAt(4, 0) || l.SeedAt(-1, 0) {
		t.Fatal("out-of-bounds seed accepted")
	}
	if len(sim.seeds) != 1 || sim.seeds[0] != [2]int{1, 2} {
		t.Fatalf("seeds = %v", sim.seeds)
	}
}

func TestLoopStatusShowsPauseImmediately(t *testing.T) {
	l, _ := newTestLoop(4, 60)
	l.TogglePause()
	if got := l.Status(); got[len(got)-1] != "Paused" {
		t.Fatalf("status after pause = %v", got)
	}
	l.Resume()
	if got := l.Status(); got[len(got)-1] == "Paused" {
		t.Fatalf("status after resume = %v", got)
	}
}
