package emotion

import (
	"image/color"
	"slices"
	"testing"
)

func TestSummarizeEmptyGrid(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	s := Summarize(g)
	if s.ActiveCells != 0 || s.Dominant != KindNone {
		t.Fatalf("empty grid summary = %+v", s)
	}
	if s.Dominant.String() != "none" {
		t.Fatalf("dominant name = %q", s.Dominant.String())
	}
	if len(s.Top(3)) != 0 {
		t.Fatal("empty grid has no top emotions")
	}
}

func TestSummarizeDominantTieBreaksByCatalogOrder(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	setAlive(g, 0, 0, Pride)
	setAlive(g, 1, 0, Pride)
	setAlive(g, 0, 3, Fear)
	setAlive(g, 1, 3, Fear)
	setAlive(g, 3, 3, Calm)

	s := Summarize(g)
	if s.ActiveCells != 5 {
		t.Fatalf("active = %d, want 5", s.ActiveCells)
	}
	if s.Dominant != Fear {
		t.Fatalf("dominant = %v, want Fear (earlier in catalog than Pride)", s.Dominant)
	}
	if top := s.Top(3); !slices.Equal(top, []Kind{Fear, Pride, Calm}) {
		t.Fatalf("top = %v", top)
	}
	if !slices.Equal(s.ZoneActive, []int{2, 3}) {
		t.Fatalf("zone counts = %v, want [2 3]", s.ZoneActive)
	}
	if s.MeanIntensity != 1 {
		t.Fatalf("mean intensity = %f", s.MeanIntensity)
	}
}

func TestEnergyLevel(t *testing.T) {
	if got := (Stats{ActiveCells: 100, Generation: 50}).EnergyLevel(); got != 25 {
		t.Fatalf("energy level = %d, want 25", got)
	}
	if got := (Stats{ActiveCells: 10000, Generation: 5000}).EnergyLevel(); got != 100 {
		t.Fatalf("energy level should cap at 100, got %d", got)
	}
}

func TestDisplayColorScalesWithIntensity(t *testing.T) {
	c := Cell{Alive: true, Emotion: Joy, Intensity: 1}
	if got := DisplayColor(&c, 1.5); got != Joy.Color() {
		t.Fatalf("full intensity color = %v, want base %v", got, Joy.Color())
	}
	c.Intensity = 0.5
	want := color.RGBA{R: 191, G: 172, B: 52, A: 255}
	if got := DisplayColor(&c, 1.5); got != want {
		t.Fatalf("half intensity color = %v, want %v", got, want)
	}
}

func TestBatchesGroupByColor(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	setAlive(g, 0, 0, Joy)
	setAlive(g, 3, 1, Anger)
	setAlive(g, 2, 2, Joy)
	dim := setAlive(g, 1, 3, Joy)
	dim.Intensity = 0.2

	batches := Batches(g, 10, 10)
	if len(batches) != 3 {
		t.Fatalf("expected 3 color batches, got %d", len(batches))
	}
	first := batches[0]
	if first.Color != Joy.Color() || len(first.Rects) != 2 {
		t.Fatalf("first batch = %+v", first)
	}
	if r := first.Rects[1]; r.X != 20 || r.Y != 20 || r.W != 10 || r.H != 10 {
		t.Fatalf("rect = %+v", r)
	}
	if batches[1].Color != Anger.Color() {
		t.Fatalf("second batch color = %v", batches[1].Color)
	}
	total := 0
	for _, b := range batches {
		total += len(b.Rects)
	}
	if total != Summarize(g).ActiveCells {
		t.Fatalf("batches cover %d cells", total)
	}
}
