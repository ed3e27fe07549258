package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells returns one display value per cell in row-major order; zero means
// an empty cell.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// FrameSource is implemented by sims that emit batched draw instructions.
type FrameSource interface {
	Frame(cellW, cellH float64) []DrawBatch
}

// StatusProvider exposes short summary lines for HUDs and terminals.
type StatusProvider interface {
	StatusLines() []string
}

// SeedReporter is implemented by sims that know the seed they were last reset
// with.
type SeedReporter interface {
	Seed() int64
}

// Seeder is implemented by sims that accept user placed seeds.
type Seeder interface {
	SeedAt(x, y int)
}

// ZoneProvider exposes a static partition of the grid into zones.
type ZoneProvider interface {
	ZoneIndex(x, y int) int
	ZoneCount() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
