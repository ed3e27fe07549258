package emotion

import (
	"math"

	pcore "dorian-ca/pkg/core"
)

// MemoryDepth is the number of past emotions a cell remembers.
const MemoryDepth = 3

// Cell is the unit of simulation state. Its position never changes.
type Cell struct {
	X, Y int

	Alive     bool
	Emotion   Kind
	Intensity float64
	Age       int
	Energy    float64

	memory [MemoryDepth]Kind
	memLen int
}

// Memory returns the remembered kinds, oldest first.
func (c *Cell) Memory() []Kind {
	return append([]Kind(nil), c.memory[:c.memLen]...)
}

// remember appends k, evicting the oldest entry when full.
func (c *Cell) remember(k Kind) {
	if c.memLen < MemoryDepth {
		c.memory[c.memLen] = k
		c.memLen++
		return
	}
	copy(c.memory[:], c.memory[1:])
	c.memory[MemoryDepth-1] = k
}

// dormant puts the cell into the dead starting state, keeping its emotion.
func (c *Cell) dormant(p *Params) {
	c.Alive = false
	c.Intensity = p.DormantIntensity
	c.Age = 0
	c.Energy = p.InitialEnergy
	c.memLen = 0
}

// ignite makes the cell alive with fresh vitals.
func (c *Cell) ignite(k Kind, p *Params) {
	c.Alive = true
	c.Emotion = k
	c.Intensity = p.BirthIntensity
	c.Energy = p.InitialEnergy
	c.Age = 0
}

// evaluate applies one generation of the transition rule. live holds the
// kinds of the live neighbors as of the previous generation.
func (c *Cell) evaluate(live []Kind, zone *Zone, p *Params, rng pcore.Source) {
	if !c.Alive {
		n := len(live)
		if n == 0 || n < p.BirthMin || n > p.BirthMax || rng.Float64() >= p.BirthChance {
			return
		}
		kind := live[rng.IntN(n)]
		if rng.Float64() < p.MutationChance {
			kind = Kind(rng.IntN(NumKinds))
		}
		c.ignite(kind, p)
		return
	}

	c.Age++
	decay := p.DecayBase * zone.DecayModifier
	if zone.Suppress.Has(c.Emotion) {
		decay *= p.SuppressFactor
	}
	if zone.Boost.Has(c.Emotion) {
		decay *= p.BoostFactor
	}
	c.Intensity = math.Max(p.MinIntensity, c.Intensity-decay)
	c.Energy -= p.EnergyDrain
	if c.Age > p.MaxAge || c.Energy <= 0 {
		c.Alive = false
		c.remember(c.Emotion)
	}
}
