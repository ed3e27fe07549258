package emotion

import (
	"strconv"
	"strings"

	"dorian-ca/internal/core"
)

// Parameters reports the world's configuration grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.grid.cfg
	params := cfg.Params
	zones := make([]core.Parameter, 0, len(cfg.Zones)+1)
	zones = append(zones, core.Parameter{Key: "partition", Label: "Partition", Type: core.ParamTypeString, Value: cfg.Partition})
	for _, z := range cfg.Zones {
		zones = append(zones, core.Parameter{
			Key:         "zone_" + z.Name,
			Label:       z.Name,
			Type:        core.ParamTypeFloat,
			Value:       strconv.FormatFloat(z.DecayModifier, 'f', -1, 64),
			Description: "boost " + joinKinds(z.Boost) + "; suppress " + joinKinds(z.Suppress),
		})
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Birth",
			Params: []core.Parameter{
				intParam("birth_min", "Birth neighbors min", params.BirthMin),
				intParam("birth_max", "Birth neighbors max", params.BirthMax),
				floatParam("birth_chance", "Birth chance", params.BirthChance),
				floatParam("mutation_chance", "Mutation chance", params.MutationChance),
				intParam("seed_radius", "Seed radius", params.SeedRadius),
			},
		},
		{
			Name: "Decay",
			Params: []core.Parameter{
				intParam("max_age", "Max age", params.MaxAge),
				floatParam("decay_base", "Decay base", params.DecayBase),
				floatParam("suppress_factor", "Suppress factor", params.SuppressFactor),
				floatParam("boost_factor", "Boost factor", params.BoostFactor),
				floatParam("min_intensity", "Min intensity", params.MinIntensity),
				floatParam("energy_drain", "Energy drain", params.EnergyDrain),
				floatParam("initial_energy", "Initial energy", params.InitialEnergy),
			},
		},
		{Name: "Zones", Params: zones},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "birth_chance", Label: "Birth chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "mutation_chance", Label: "Mutation chance", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "decay_base", Label: "Decay base", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "energy_drain", Label: "Energy drain", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.01, Max: 10, HasMin: true, HasMax: true},
	{Key: "max_age", Label: "Max age", Type: core.ParamTypeInt, Step: 50, Min: 1, HasMin: true},
	{Key: "seed_radius", Label: "Seed radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
}

// ParameterControls lists the parameters adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), parameterControls...)
}

func findControl(key string, kind core.ParamType) (core.ParameterControl, bool) {
	for _, ctrl := range parameterControls {
		if ctrl.Key == key && ctrl.Type == kind {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a float control, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := findControl(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	value = ctrl.Clamp(value)
	p := w.grid.Params()
	switch key {
	case "birth_chance":
		p.BirthChance = value
	case "mutation_chance":
		p.MutationChance = value
	case "decay_base":
		p.DecayBase = value
	case "energy_drain":
		p.EnergyDrain = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer control, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := findControl(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	p := w.grid.Params()
	switch key {
	case "max_age":
		p.MaxAge = value
	case "seed_radius":
		p.SeedRadius = value
	default:
		return false
	}
	return true
}

func joinKinds(s KindSet) string {
	names := kindNames(s)
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
