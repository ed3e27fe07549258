package emotion

import "math"

// Stats summarizes one scan of the grid.
type Stats struct {
	Generation  int
	ActiveCells int
	// Dominant is the most common kind among alive cells, KindNone when no
	// cell is alive. Ties go to the kind earliest in catalog order.
	Dominant Kind
	Counts   [NumKinds]int
	// ZoneActive counts alive cells per zone table entry.
	ZoneActive    []int
	MeanIntensity float64
}

// Summarize scans every cell once.
func Summarize(g *Grid) Stats {
	s := Stats{Dominant: KindNone, ZoneActive: make([]int, len(g.zones.Zones))}
	var intensity float64
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Alive {
			continue
		}
		s.ActiveCells++
		if c.Emotion.Valid() {
			s.Counts[c.Emotion]++
		}
		s.ZoneActive[g.zoneOf[i]]++
		intensity += c.Intensity
	}
	if s.ActiveCells > 0 {
		s.MeanIntensity = intensity / float64(s.ActiveCells)
	}
	best := 0
	for _, k := range allKinds {
		if s.Counts[k] > best {
			best = s.Counts[k]
			s.Dominant = k
		}
	}
	return s
}

// Top returns up to n kinds with at least one alive cell, most common first.
// Ties keep catalog order.
func (s Stats) Top(n int) []Kind {
	var out []Kind
	used := [NumKinds]bool{}
	for len(out) < n {
		pick, best := KindNone, 0
		for _, k := range allKinds {
			if !used[k] && s.Counts[k] > best {
				pick, best = k, s.Counts[k]
			}
		}
		if pick == KindNone {
			break
		}
		used[pick] = true
		out = append(out, pick)
	}
	return out
}

// EnergyLevel is a 0-100 activity gauge combining population and age of the
// run.
func (s Stats) EnergyLevel() int {
	level := math.Round(float64(s.ActiveCells)/5 + float64(s.Generation)/10)
	return int(math.Min(100, level))
}
