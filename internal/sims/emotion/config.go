package emotion

import (
	"fmt"
	"strconv"
)

// Params holds the rule constants of the automaton.
type Params struct {
	MaxAge         int
	MutationChance float64
	MinIntensity   float64

	BirthMin    int
	BirthMax    int
	BirthChance float64

	DecayBase      float64
	EnergyDrain    float64
	SuppressFactor float64
	BoostFactor    float64

	InitialEnergy    float64
	DormantIntensity float64
	BirthIntensity   float64

	SeedRadius     int
	BrightnessGain float64
}

// Config controls the grid dimensions, the rules and the zone layout.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params

	Partition string
	Zones     []Zone
}

// DefaultParams returns the stock rule set.
func DefaultParams() Params {
	return Params{
		MaxAge:           800,
		MutationChance:   0.002,
		MinIntensity:     0.1,
		BirthMin:         3,
		BirthMax:         4,
		BirthChance:      0.25,
		DecayBase:        0.01,
		EnergyDrain:      0.2,
		SuppressFactor:   1.5,
		BoostFactor:      0.6,
		InitialEnergy:    10,
		DormantIntensity: 0.5,
		BirthIntensity:   1.0,
		SeedRadius:       2,
		BrightnessGain:   1.5,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     200,
		Height:    200,
		Seed:      1337,
		Params:    DefaultParams(),
		Partition: "rows",
		Zones:     DefaultZones(),
	}
}

// CanvasConfig returns the smaller, shorter-lived preset used by the
// embedded interactive view.
func CanvasConfig() Config {
	c := DefaultConfig()
	c.Width = 150
	c.Height = 150
	c.Params.MaxAge = 400
	return c
}

// ZoneMap builds the zone map described by the config.
func (c Config) ZoneMap() (ZoneMap, error) {
	return NewZoneMap(c.Partition, c.Zones)
}

// Validate reports configuration errors that would make the grid unusable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("emotion: grid %dx%d: %w", c.Width, c.Height, ErrInvalidGridSize)
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	zm, err := c.ZoneMap()
	if err != nil {
		return err
	}
	return zm.Validate(c.Width, c.Height)
}

// Validate checks that the rules keep intensity within
// [MinIntensity, 1] and every rate and probability in range.
func (p Params) Validate() error {
	switch {
	case !(p.MinIntensity > 0 && p.MinIntensity <= 1):
		return fmt.Errorf("emotion: min_intensity %g outside (0, 1]: %w", p.MinIntensity, ErrInvalidParams)
	case !(p.DormantIntensity >= p.MinIntensity && p.DormantIntensity <= 1):
		return fmt.Errorf("emotion: dormant_intensity %g outside [%g, 1]: %w", p.DormantIntensity, p.MinIntensity, ErrInvalidParams)
	case !(p.BirthIntensity >= p.MinIntensity && p.BirthIntensity <= 1):
		return fmt.Errorf("emotion: birth_intensity %g outside [%g, 1]: %w", p.BirthIntensity, p.MinIntensity, ErrInvalidParams)
	case !inUnit(p.MutationChance):
		return fmt.Errorf("emotion: mutation_chance %g outside [0, 1]: %w", p.MutationChance, ErrInvalidParams)
	case !inUnit(p.BirthChance):
		return fmt.Errorf("emotion: birth_chance %g outside [0, 1]: %w", p.BirthChance, ErrInvalidParams)
	case p.BirthMin < 0 || p.BirthMin > p.BirthMax || p.BirthMax > 8:
		return fmt.Errorf("emotion: birth range [%d, %d] not within [0, 8]: %w", p.BirthMin, p.BirthMax, ErrInvalidParams)
	case p.MaxAge < 0:
		return fmt.Errorf("emotion: max_age %d: %w", p.MaxAge, ErrInvalidParams)
	case p.SeedRadius < 0:
		return fmt.Errorf("emotion: seed_radius %d: %w", p.SeedRadius, ErrInvalidParams)
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"decay_base", p.DecayBase},
		{"energy_drain", p.EnergyDrain},
		{"suppress_factor", p.SuppressFactor},
		{"boost_factor", p.BoostFactor},
		{"initial_energy", p.InitialEnergy},
		{"brightness_gain", p.BrightnessGain},
	}
	for _, r := range rates {
		if !(r.v >= 0) {
			return fmt.Errorf("emotion: %s %g is negative: %w", r.name, r.v, ErrInvalidParams)
		}
	}
	return nil
}

func inUnit(v float64) bool { return v >= 0 && v <= 1 }

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map. Unknown keys and
// unparsable values are ignored. When the combined rule overrides fail
// Params.Validate, base's rules are kept.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	p := &c.Params
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["partition"]; ok {
		if _, known := partitions[v]; known {
			c.Partition = v
		}
	}
	if v, ok := cfg["max_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.MaxAge = parsed
		}
	}
	if v, ok := cfg["birth_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 8 {
			p.BirthMin = parsed
		}
	}
	if v, ok := cfg["birth_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 8 {
			p.BirthMax = parsed
		}
	}
	if p.BirthMax < p.BirthMin {
		p.BirthMax = p.BirthMin
	}
	if v, ok := cfg["seed_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.SeedRadius = parsed
		}
	}
	setProbability(cfg, "mutation_chance", &p.MutationChance)
	setProbability(cfg, "birth_chance", &p.BirthChance)
	setProbability(cfg, "min_intensity", &p.MinIntensity)
	setNonNegative(cfg, "decay_base", &p.DecayBase)
	setNonNegative(cfg, "energy_drain", &p.EnergyDrain)
	setNonNegative(cfg, "suppress_factor", &p.SuppressFactor)
	setNonNegative(cfg, "boost_factor", &p.BoostFactor)
	setNonNegative(cfg, "initial_energy", &p.InitialEnergy)
	setNonNegative(cfg, "brightness_gain", &p.BrightnessGain)
	if c.Params.Validate() != nil {
		c.Params = base.Params
	}
	return c
}

func setProbability(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}

func setNonNegative(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
		*dst = parsed
	}
}
