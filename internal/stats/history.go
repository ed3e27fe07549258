// Package stats records summaries of a running simulation and plots them.
package stats

import "dorian-ca/internal/sims/emotion"

// Sample is one recorded summary.
type Sample struct {
	Generation    int
	ActiveCells   int
	Dominant      emotion.Kind
	Counts        [emotion.NumKinds]int
	MeanIntensity float64
}

// History keeps a bounded window of samples, oldest first.
type History struct {
	limit   int
	samples []Sample
}

// NewHistory keeps at most limit samples. Non-positive limits keep all.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add records s, evicting the oldest sample when full.
func (h *History) Add(s emotion.Stats) {
	h.samples = append(h.samples, Sample{
		Generation:    s.Generation,
		ActiveCells:   s.ActiveCells,
		Dominant:      s.Dominant,
		Counts:        s.Counts,
		MeanIntensity: s.MeanIntensity,
	})
	if h.limit > 0 && len(h.samples) > h.limit {
		h.samples = append(h.samples[:0], h.samples[len(h.samples)-h.limit:]...)
	}
}

// Samples returns the recorded samples. The slice must not be modified.
func (h *History) Samples() []Sample { return h.samples }

// Len reports how many samples are kept.
func (h *History) Len() int { return len(h.samples) }

// PeakActive returns the sample with the most active cells.
func (h *History) PeakActive() (Sample, bool) {
	if len(h.samples) == 0 {
		return Sample{}, false
	}
	best := h.samples[0]
	for _, s := range h.samples[1:] {
		if s.ActiveCells > best.ActiveCells {
			best = s
		}
	}
	return best, true
}
