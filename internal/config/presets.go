package config

var Presets = map[string]*Config{
	"default": {
		Rows: 10, Cols: 10, Probability: 0.05, Output: DefaultOutput,
	},
	"sparse": {
		Rows: 40, Cols: 80, Probability: 0.05, Output: DefaultOutput,
	},
	"dense": {
		Rows: 40, Cols: 80, Probability: 0.25, Output: DefaultOutput,
	},
	"soup": {
		Rows: 40, Cols: 80, Probability: 0.5, Output: DefaultOutput,
	},
	"large": {
		Rows: 200, Cols: 200, Probability: 0.05, Output: DefaultOutput,
	},
	"glider": {
		Rows: 20, Cols: 20, Probability: 0, Pattern: "glider", Output: DefaultOutput,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	// Callers mutate the result when applying flag overrides.
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
