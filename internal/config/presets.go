package config

import "sort"

// Presets are named starting points for the CLI and the live view.
var Presets = map[string]*Config{
	"glider": {
		Flyer: FlyerConfig{Mass: 80, SpawnAltitude: 50, ForwardSpeed: 12},
		Wing:  WingConfig{Count: 2, Span: 5, Chord: 1.2, AngleOfAttack: 0.08},
		Weather: WeatherConfig{
			WindX: 2, WindZ: 1, TurbulenceIntensity: 0.05,
			GustFrequency: 0.05, GustStrength: 1,
			Temperature: 15, Pressure: 101325, Humidity: 0.5,
		},
		Sim: SimConfig{Dt: 0.01, Duration: 60, Speed: 1, Gravity: 9.81, Ground: 0.5},
	},
	"flapper": {
		Flyer:    FlyerConfig{Mass: 75, SpawnAltitude: 5, ForwardSpeed: 8},
		Wing:     WingConfig{Count: 2, Span: 4, Chord: 0.9, AngleOfAttack: 0.12},
		Flapping: FlappingConfig{Enabled: true, Frequency: 2.2, PowerStrokeRatio: 0.3},
		Weather: WeatherConfig{
			WindX: 3, WindZ: 1, TurbulenceIntensity: 0.1,
			GustFrequency: 0.1, GustStrength: 2,
			Temperature: 15, Pressure: 101325, Humidity: 0.5,
		},
		Sim: SimConfig{Dt: 0.01, Duration: 30, Speed: 1, Gravity: 9.81, Ground: 0.5},
	},
	"powered": {
		Flyer:      FlyerConfig{Mass: 85, SpawnAltitude: 5, ForwardSpeed: 10},
		Wing:       WingConfig{Count: 2, Span: 4.5, Chord: 1.0, AngleOfAttack: 0.1},
		Propulsion: PropulsionConfig{Power: 350, Throttle: 0.8},
		Weather: WeatherConfig{
			WindX: 5, WindZ: 2, TurbulenceIntensity: 0.1,
			GustFrequency: 0.1, GustStrength: 2,
			Temperature: 15, Pressure: 101325, Humidity: 0.5,
		},
		Sim: SimConfig{Dt: 0.01, Duration: 30, Speed: 1, Gravity: 9.81, Ground: 0.5},
	},
	"storm": {
		Flyer:      FlyerConfig{Mass: 80, SpawnAltitude: 20, ForwardSpeed: 10},
		Wing:       WingConfig{Count: 2, Span: 4, Chord: 1.0, AngleOfAttack: 0.1},
		Propulsion: PropulsionConfig{Power: 300, Throttle: 0.6},
		Weather: WeatherConfig{
			WindX: 12, WindZ: 6, TurbulenceIntensity: 0.4,
			GustFrequency: 0.3, GustStrength: 6,
			Temperature: 8, Pressure: 99000, Humidity: 0.9,
		},
		Sim: SimConfig{Dt: 0.01, Duration: 30, Speed: 1, Gravity: 9.81, Ground: 0.5},
	},
	"skimmer": {
		// Low pass over the surface; ground effect dominates.
		Flyer:      FlyerConfig{Mass: 78, SpawnAltitude: 2, ForwardSpeed: 14},
		Wing:       WingConfig{Count: 2, Span: 6, Chord: 1.1, AngleOfAttack: 0.06},
		Propulsion: PropulsionConfig{Power: 280, Throttle: 0.7},
		Weather: WeatherConfig{
			WindX: 1, WindZ: 0, TurbulenceIntensity: 0.03,
			GustFrequency: 0.02, GustStrength: 0.5,
			Temperature: 15, Pressure: 101325, Humidity: 0.5,
		},
		Sim: SimConfig{Dt: 0.01, Duration: 45, Speed: 1, Gravity: 9.81, Ground: 0.5},
	},
}

// GetPreset returns a copy of the named preset so callers can mutate it.
func GetPreset(name string) (*Config, bool) {
	p, ok := Presets[name]
	if !ok {
		return nil, false
	}
	c := *p
	return &c, true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
