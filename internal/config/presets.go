package config

import "sort"

// Presets are well known regions of the Mandelbrot set.
var Presets = map[string]*Config{
	"full": {
		Resolution: "1200x900", UpperLeft: "-2.5,1.25", LowerRight: "1.0,-1.25", Limit: 200,
	},
	"default": {
		Resolution: DefaultResolution, UpperLeft: DefaultUpperLeft, LowerRight: DefaultLowerRight, Limit: 200,
	},
	// dense filaments and repeating curls
	"seahorse_valley": {
		Resolution: "1000x1000", UpperLeft: "-0.8,0.15", LowerRight: "-0.7,0.05", Limit: 500,
	},
	"elephant_valley": {
		Resolution: "1000x800", UpperLeft: "-1.85,-0.02", LowerRight: "-1.75,-0.10", Limit: 500,
	},
	"spiral_minibrot": {
		Resolution: "1000x1000", UpperLeft: "-0.7435,0.1325", LowerRight: "-0.7420,0.1310", Limit: 1000,
	},
	"triple_spiral": {
		Resolution: "1000x1000", UpperLeft: "-0.7480,0.0980", LowerRight: "-0.7450,0.0950", Limit: 1000,
	},
	"valley_of_the_dragon": {
		Resolution: "1000x1000", UpperLeft: "-0.7400,0.1850", LowerRight: "-0.7350,0.1800", Limit: 1000,
	},
	"minibrot_in_mini_spiral": {
		Resolution: "1000x1000", UpperLeft: "-1.7390,-0.0220", LowerRight: "-1.7375,-0.0235", Limit: 1000,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Output == "" {
		cfg.Output = name + ".png"
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
