package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
		if x, y := a.IntN(10), b.IntN(10); x != y {
			t.Fatalf("int draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGReseedRewinds(t *testing.T) {
	r := NewRNG(7)
	first := []float64{r.Float64(), r.Float64(), r.Float64()}
	r.Reseed(7)
	for i, want := range first {
		if got := r.Float64(); got != want {
			t.Fatalf("draw %d after reseed = %f, want %f", i, got, want)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

var _ Source = (*RNG)(nil)
