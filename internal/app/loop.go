package app

import "dorian-ca/internal/core"

// Loop drives a simulation from a frame clock. Steps run on one cadence and
// status refreshes on another, counted in steps.
type Loop struct {
	sim   core.Sim
	step  *core.Cadence
	stats *core.Cadence

	paused   bool
	tickOnce bool
	seed     int64
	status   []string
}

// NewLoop wires sim to the cadences in cfg. The sim is expected to be reset
// already; its own seed, when it reports one, wins over cfg.Seed.
func NewLoop(sim core.Sim, cfg *Config) *Loop {
	l := &Loop{
		sim:   sim,
		step:  core.NewCadence(cfg.StepEvery),
		stats: core.NewCadence(cfg.StatsEvery),
		seed:  cfg.Seed,
	}
	if r, ok := sim.(core.SeedReporter); ok {
		l.seed = r.Seed()
	}
	l.refreshStatus()
	return l
}

// Sim returns the driven simulation.
func (l *Loop) Sim() core.Sim { return l.sim }

// Frame advances the frame clock and reports whether a step ran.
func (l *Loop) Frame() bool {
	if l.tickOnce {
		l.tickOnce = false
		l.advance()
		return true
	}
	if l.paused || !l.step.Tick() {
		return false
	}
	l.advance()
	return true
}

func (l *Loop) advance() {
	l.sim.Step()
	if l.stats.Tick() {
		l.refreshStatus()
	}
}

// TogglePause flips between running and paused.
func (l *Loop) TogglePause() { l.paused = !l.paused }

// Resume clears the paused flag.
func (l *Loop) Resume() { l.paused = false }

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool { return l.paused }

// StepOnce schedules a single step on the next frame even when paused.
func (l *Loop) StepOnce() { l.tickOnce = true }

// Reset restarts the sim with seed and rewinds both cadences.
func (l *Loop) Reset(seed int64) {
	l.seed = seed
	l.sim.Reset(seed)
	l.tickOnce = false
	l.step.Reset()
	l.stats.Reset()
	l.refreshStatus()
}

// Seed returns the seed used by the last reset.
func (l *Loop) Seed() int64 { return l.seed }

// SeedAt forwards a user placed seed to sims that accept one.
func (l *Loop) SeedAt(x, y int) bool {
	s, ok := l.sim.(core.Seeder)
	if !ok {
		return false
	}
	size := l.sim.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return false
	}
	s.SeedAt(x, y)
	return true
}

// Status returns the lines captured at the last statistics refresh.
func (l *Loop) Status() []string {
	lines := l.status
	if l.paused {
		lines = append(append([]string(nil), lines...), "Paused")
	}
	return lines
}

func (l *Loop) refreshStatus() {
	if p, ok := l.sim.(core.StatusProvider); ok {
		l.status = p.StatusLines()
	}
}
