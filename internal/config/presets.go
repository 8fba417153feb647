package config

var Presets = map[string]*Config{
	"baseline": {
		RPM: 600, Duration: 2.0, Samples: 1000, Output: DefaultOutput,
		Cases: []CaseConfig{
			{Name: "Unbalanced", Components: []ComponentConfig{
				{Name: "component1", Mass: 2.0, Position: []float64{1.0, 2.0, 0.0}},
				{Name: "component2", Mass: 1.5, Position: []float64{-1.0, -2.0, 0.0}},
				{Name: "component3", Mass: 2.5, Position: []float64{2.0, 1.0, 0.0}},
			}},
			{Name: "Balanced", Components: []ComponentConfig{
				{Name: "component1", Mass: 2.0, Position: []float64{1.0, 0.0, 0.0}},
				{Name: "component2", Mass: 1.5, Position: []float64{-1.0, 0.0, 0.0}},
				{Name: "component3", Mass: 2.5, Position: []float64{0.0, 0.0, 0.0}},
			}},
		},
	},
	"trim-balanced": {
		RPM: 1200, Duration: 1.0, Samples: 2000, Output: DefaultOutput,
		Cases: []CaseConfig{
			{Name: "Untrimmed", Components: []ComponentConfig{
				{Name: "disk", Mass: 5.0, Position: []float64{0.02, 0.0, 0.0}},
				{Name: "bolt", Mass: 0.1, Position: []float64{0.3, 0.1, 0.05}},
			}},
			{Name: "Trimmed", Components: []ComponentConfig{
				{Name: "disk", Mass: 5.0, Position: []float64{0.02, 0.0, 0.0}},
				{Name: "bolt", Mass: 0.1, Position: []float64{0.3, 0.1, 0.05}},
				{Name: "trim_weight", Mass: 0.13, Position: []float64{-1.0, -0.077, 0.0}},
			}},
		},
	},
	"overhung": {
		RPM: 300, Duration: 4.0, Samples: 1000, Output: DefaultOutput,
		Cases: []CaseConfig{
			{Name: "Centered", Components: []ComponentConfig{
				{Name: "impeller", Mass: 3.0, Position: []float64{0.0, 0.0, 0.4}},
			}},
			{Name: "Offset", Components: []ComponentConfig{
				{Name: "impeller", Mass: 3.0, Position: []float64{0.05, 0.03, 0.4}},
			}},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
