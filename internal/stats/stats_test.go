package stats

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"dorian-ca/internal/sims/emotion"
)

func TestHistoryBoundedWindow(t *testing.T) {
	h := NewHistory(3)
	for gen := 0; gen < 5; gen++ {
		h.Add(emotion.Stats{Generation: gen, ActiveCells: gen * 10})
	}
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	if first := h.Samples()[0].Generation; first != 2 {
		t.Fatalf("oldest kept generation = %d, want 2", first)
	}
	peak, ok := h.PeakActive()
	if !ok || peak.Generation != 4 {
		t.Fatalf("peak = %+v", peak)
	}
}

func TestHistoryPeakEmpty(t *testing.T) {
	if _, ok := NewHistory(0).PeakActive(); ok {
		t.Fatal("empty history has no peak")
	}
}

func TestWriteChartProducesPNG(t *testing.T) {
	h := NewHistory(0)
	var buf bytes.Buffer
	if err := h.WriteChart(&buf, 400, 200); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("expected ErrTooFewSamples, got %v", err)
	}

	for gen := 0; gen < 10; gen++ {
		s := emotion.Stats{Generation: gen * 60, ActiveCells: 25 + gen*7, Dominant: emotion.Joy}
		s.Counts[emotion.Joy] = 20 + gen*5
		s.Counts[emotion.Fear] = 5 + gen*2
		h.Add(s)
	}
	if err := h.WriteChart(&buf, 400, 200); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("chart size = %v", b)
	}
}
