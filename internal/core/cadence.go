package core

// Cadence fires once every N ticks. It lets a driving loop run simulation
// steps and statistics at coarser rates than the frame rate.
type Cadence struct {
	every int
	count int
}

// NewCadence constructs a Cadence that fires on every n-th tick, starting
// with the first. Non-positive values fire on every tick.
func NewCadence(n int) *Cadence {
	c := &Cadence{}
	c.SetEvery(n)
	return c
}

// SetEvery changes the divider. It is safe to call from the main loop.
func (c *Cadence) SetEvery(n int) {
	if n <= 0 {
		n = 1
	}
	c.every = n
}

// Every reports the current divider.
func (c *Cadence) Every() int { return c.every }

// Tick advances the counter and reports whether this tick fires.
func (c *Cadence) Tick() bool {
	fire := c.count%c.every == 0
	c.count++
	return fire
}

// Reset restarts the counter so the next tick fires.
func (c *Cadence) Reset() { c.count = 0 }
