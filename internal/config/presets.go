package config

var Presets = map[string]*Config{
	"classic": {
		Width: 60, Height: 24, Life: 32, Multiplier: 5,
		Leaves: []string{"&"}, Theme: "classic", FPS: 30,
	},
	"sapling": {
		Width: 40, Height: 16, Life: 16, Multiplier: 3,
		Leaves: []string{"&", "*"}, Theme: "classic", FPS: 30,
	},
	"ancient": {
		Width: 80, Height: 30, Life: 64, Multiplier: 4,
		Leaves: []string{"&"}, Theme: "autumn", FPS: 30,
	},
	"thicket": {
		Width: 70, Height: 26, Life: 40, Multiplier: 9,
		Leaves: []string{"&", "%", "*"}, Theme: "classic", FPS: 30,
	},
	"windswept": {
		Width: 70, Height: 20, Life: 36, Multiplier: 2,
		Leaves: []string{"&"}, Theme: "winter", ClampDeltas: true, FPS: 30,
	},
	"sakura": {
		Width: 60, Height: 24, Life: 44, Multiplier: 6,
		Leaves: []string{"✿", "❀", "&"}, Theme: "sakura", FPS: 30,
	},
}

// GetPreset returns a private copy of the named preset, so callers can
// mutate the result without corrupting the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Leaves = append([]string(nil), cfg.Leaves...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
