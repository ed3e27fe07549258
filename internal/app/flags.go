package app

import (
	"flag"
	"fmt"
	"strings"

	"dorian-ca/internal/sims/emotion"
)

// Config represents the command-line parameters shared by the runners.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	// StepEvery is the number of frames between simulation steps.
	StepEvery int
	// StatsEvery is the number of steps between statistics refreshes.
	StatsEvery int
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dorian", Scale: 4, TPS: 60, Seed: 1337, StepEvery: 4, StatsEvery: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML configuration file")
	fs.IntVar(&c.StepEvery, "step-every", c.StepEvery, "frames between simulation steps")
	fs.IntVar(&c.StatsEvery, "stats-every", c.StatsEvery, "steps between statistics refreshes")
	fs.Var(&c.Overrides, "set", SetUsage())
}

// SetUsage is the help text of the -set flag.
func SetUsage() string {
	return fmt.Sprintf("parameter override in key=value form, repeatable (partition: %s)",
		strings.Join(emotion.PartitionNames(), "|"))
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends one raw value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the collected pairs. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
