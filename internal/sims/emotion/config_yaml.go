package emotion

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type fileConfig struct {
	Grid  gridFile  `yaml:"grid"`
	Seed  int64     `yaml:"seed"`
	Rules rulesFile `yaml:"rules"`
	Zones zonesFile `yaml:"zones"`
}

type gridFile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type rulesFile struct {
	MaxAge           int     `yaml:"max_age"`
	MutationChance   float64 `yaml:"mutation_chance"`
	MinIntensity     float64 `yaml:"min_intensity"`
	BirthMin         int     `yaml:"birth_min"`
	BirthMax         int     `yaml:"birth_max"`
	BirthChance      float64 `yaml:"birth_chance"`
	DecayBase        float64 `yaml:"decay_base"`
	EnergyDrain      float64 `yaml:"energy_drain"`
	SuppressFactor   float64 `yaml:"suppress_factor"`
	BoostFactor      float64 `yaml:"boost_factor"`
	InitialEnergy    float64 `yaml:"initial_energy"`
	DormantIntensity float64 `yaml:"dormant_intensity"`
	BirthIntensity   float64 `yaml:"birth_intensity"`
	SeedRadius       int     `yaml:"seed_radius"`
	BrightnessGain   float64 `yaml:"brightness_gain"`
}

type zonesFile struct {
	Partition string     `yaml:"partition"`
	Table     []zoneFile `yaml:"table"`
}

type zoneFile struct {
	Name          string   `yaml:"name"`
	DecayModifier float64  `yaml:"decay_modifier"`
	Boost         []string `yaml:"boost,flow"`
	Suppress      []string `yaml:"suppress,flow"`
}

// LoadConfig reads a YAML configuration, merging it over the embedded
// defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(defaultsYAML, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg, err := fc.config()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(newFileConfig(c))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (fc fileConfig) config() (Config, error) {
	r := fc.Rules
	cfg := Config{
		Width:  fc.Grid.Width,
		Height: fc.Grid.Height,
		Seed:   fc.Seed,
		Params: Params{
			MaxAge:           r.MaxAge,
			MutationChance:   r.MutationChance,
			MinIntensity:     r.MinIntensity,
			BirthMin:         r.BirthMin,
			BirthMax:         r.BirthMax,
			BirthChance:      r.BirthChance,
			DecayBase:        r.DecayBase,
			EnergyDrain:      r.EnergyDrain,
			SuppressFactor:   r.SuppressFactor,
			BoostFactor:      r.BoostFactor,
			InitialEnergy:    r.InitialEnergy,
			DormantIntensity: r.DormantIntensity,
			BirthIntensity:   r.BirthIntensity,
			SeedRadius:       r.SeedRadius,
			BrightnessGain:   r.BrightnessGain,
		},
		Partition: fc.Zones.Partition,
	}
	for _, zf := range fc.Zones.Table {
		boost, err := parseKindSet(zf.Boost)
		if err != nil {
			return Config{}, fmt.Errorf("zone %q boost: %w", zf.Name, err)
		}
		suppress, err := parseKindSet(zf.Suppress)
		if err != nil {
			return Config{}, fmt.Errorf("zone %q suppress: %w", zf.Name, err)
		}
		cfg.Zones = append(cfg.Zones, Zone{
			Name:          zf.Name,
			DecayModifier: zf.DecayModifier,
			Boost:         boost,
			Suppress:      suppress,
		})
	}
	return cfg, nil
}

func newFileConfig(c Config) fileConfig {
	p := c.Params
	fc := fileConfig{
		Grid: gridFile{Width: c.Width, Height: c.Height},
		Seed: c.Seed,
		Rules: rulesFile{
			MaxAge:           p.MaxAge,
			MutationChance:   p.MutationChance,
			MinIntensity:     p.MinIntensity,
			BirthMin:         p.BirthMin,
			BirthMax:         p.BirthMax,
			BirthChance:      p.BirthChance,
			DecayBase:        p.DecayBase,
			EnergyDrain:      p.EnergyDrain,
			SuppressFactor:   p.SuppressFactor,
			BoostFactor:      p.BoostFactor,
			InitialEnergy:    p.InitialEnergy,
			DormantIntensity: p.DormantIntensity,
			BirthIntensity:   p.BirthIntensity,
			SeedRadius:       p.SeedRadius,
			BrightnessGain:   p.BrightnessGain,
		},
		Zones: zonesFile{Partition: c.Partition},
	}
	for _, z := range c.Zones {
		fc.Zones.Table = append(fc.Zones.Table, zoneFile{
			Name:          z.Name,
			DecayModifier: z.DecayModifier,
			Boost:         kindNames(z.Boost),
			Suppress:      kindNames(z.Suppress),
		})
	}
	return fc
}

func parseKindSet(names []string) (KindSet, error) {
	var kinds []Kind
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return 0, err
		}
		kinds = append(kinds, k)
	}
	return NewKindSet(kinds...), nil
}

func kindNames(s KindSet) []string {
	var names []string
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}
	return names
}
