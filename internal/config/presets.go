package config

var Presets = map[string]*Config{
	"light-air": {
		Wind: 5.0, Course: 100, Board: 3.0,
		Rig:   RigConfig{Area: 8.5, Sheeting: 12, Downhaul: 0.1, Outhaul: 0.2},
		Water: WaterConfig{C0: 35, C2: 0.8},
	},
	"reaching": {
		Wind: 10.0, Course: 120, Board: 8.0,
		Rig:   RigConfig{Area: 6.5, Sheeting: 20, Downhaul: 0.4, Outhaul: 0.4},
		Water: WaterConfig{C0: 40, C2: 0.9},
	},
	"upwind": {
		Wind: 9.0, Course: 160, Board: 5.0,
		Rig:   RigConfig{Area: 6.0, Sheeting: 8, Downhaul: 0.5, Outhaul: 0.6},
		Water: WaterConfig{C0: 45, C2: 1.0},
	},
	"downwind": {
		Wind: 9.0, Course: 30, Board: 6.0,
		Rig:   RigConfig{Area: 7.0, Sheeting: 60, Downhaul: 0.2, Outhaul: 0.2},
		Water: WaterConfig{C0: 40, C2: 0.9},
	},
	"overpowered": {
		Wind: 16.0, Course: 130, Board: 11.0,
		Rig:   RigConfig{Area: 5.0, Sheeting: 25, Downhaul: 0.9, Outhaul: 0.8},
		Water: WaterConfig{C0: 50, C2: 1.1},
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
