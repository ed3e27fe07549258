package app

import (
	"fmt"
	"strconv"

	"dorian-ca/internal/core"
	"dorian-ca/internal/sims/emotion"
)

// BuildSim constructs the simulation selected by c and resets it. A config
// file replaces the preset defaults and carries its own seed; -set overrides
// apply on top of either.
func BuildSim(c *Config) (core.Sim, error) {
	overrides := c.Overrides.Map()
	if c.ConfigPath != "" {
		fileCfg, err := emotion.LoadConfig(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		fileCfg = emotion.ApplyMap(fileCfg, overrides)
		w, err := emotion.NewWorld(c.Sim, fileCfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", c.Sim, core.Names())
	}
	if _, ok := overrides["seed"]; !ok {
		overrides["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	sim := factory(overrides)
	sim.Reset(0)
	return sim, nil
}
