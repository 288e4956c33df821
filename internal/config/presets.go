package config

// Presets are named starting configurations for the visualization.
var Presets = map[string]*Config{
	"relaxed": {
		Chain: ChainConfig{Length: 100, Persistence: 50, Temperature: 300, Rigidity: 1.0, Noise: 0.5},
		Step:  DefaultStep, FPS: DefaultFPS,
	},
	"stiff": {
		Chain: ChainConfig{Length: 120, Persistence: 100, Temperature: 150, Rigidity: 5.0, Noise: 0.2},
		Step:  DefaultStep, FPS: DefaultFPS,
	},
	"hot": {
		Chain: ChainConfig{Length: 100, Persistence: 20, Temperature: 500, Rigidity: 0.5, Noise: 1.5},
		Step:  DefaultStep, FPS: DefaultFPS,
	},
	"stretched": {
		Chain: ChainConfig{Length: 150, Persistence: 60, Temperature: 300, Rigidity: 2.0, Noise: 0.4,
			Force: ForceConfig{X: 5}},
		Step: DefaultStep, FPS: DefaultFPS,
	},
	"coiled": {
		Chain: ChainConfig{Length: 200, Persistence: 10, Temperature: 400, Rigidity: 0.3, Noise: 1.8},
		Step:  DefaultStep, FPS: DefaultFPS,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.ForceMode == "" {
		out.ForceMode = DefaultConfig().ForceMode
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
