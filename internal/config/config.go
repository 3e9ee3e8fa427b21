// Package config loads, saves and materializes simulation configurations.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NathanVRyver/Ascent/internal/atmosphere"
	"github.com/NathanVRyver/Ascent/internal/flight"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

const (
	DefaultMass          = 80.0
	DefaultSpawnAltitude = 5.0
	DefaultForwardSpeed  = 10.0
	DefaultWingSpan      = 3.0 // per panel
	DefaultWingChord     = 1.0
	DefaultWingCount     = 2
	DefaultAngleOfAttack = 0.1
	DefaultPower         = 300.0
	DefaultDt            = 0.01
	DefaultDuration      = 30.0
)

type Config struct {
	Flyer      FlyerConfig      `yaml:"flyer"`
	Wing       WingConfig       `yaml:"wing"`
	Propulsion PropulsionConfig `yaml:"propulsion"`
	Flapping   FlappingConfig   `yaml:"flapping"`
	Weather    WeatherConfig    `yaml:"weather"`
	Sim        SimConfig        `yaml:"sim"`
}

type FlyerConfig struct {
	Mass          float64 `yaml:"mass"`
	SpawnAltitude float64 `yaml:"spawn_altitude"`
	ForwardSpeed  float64 `yaml:"forward_speed"`
}

type WingConfig struct {
	Count         int     `yaml:"count"`
	Span          float64 `yaml:"span"`
	Chord         float64 `yaml:"chord"`
	AngleOfAttack float64 `yaml:"angle_of_attack"`
	LiftSlope     float64 `yaml:"lift_slope"`
	DragCoeff     float64 `yaml:"drag_coeff"`
	Oswald        float64 `yaml:"oswald"`
}

type PropulsionConfig struct {
	Power    float64 `yaml:"power"`
	Throttle float64 `yaml:"throttle"`
}

type FlappingConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Frequency        float64 `yaml:"frequency"`
	Amplitude        float64 `yaml:"amplitude"`
	PowerStrokeRatio float64 `yaml:"power_stroke_ratio"`
}

type WeatherConfig struct {
	WindX               float64 `yaml:"wind_x"`
	WindZ               float64 `yaml:"wind_z"`
	TurbulenceIntensity float64 `yaml:"turbulence_intensity"`
	GustFrequency       float64 `yaml:"gust_frequency"`
	GustStrength        float64 `yaml:"gust_strength"`
	Temperature         float64 `yaml:"temperature"`
	Pressure            float64 `yaml:"pressure"`
	Humidity            float64 `yaml:"humidity"`
}

type SimConfig struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Speed    float64 `yaml:"speed"`
	Seed     int64   `yaml:"seed"`
	Gravity  float64 `yaml:"gravity"`
	Ground   float64 `yaml:"ground_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Flyer: FlyerConfig{
			Mass:          DefaultMass,
			SpawnAltitude: DefaultSpawnAltitude,
			ForwardSpeed:  DefaultForwardSpeed,
		},
		Wing: WingConfig{
			Count:         DefaultWingCount,
			Span:          DefaultWingSpan,
			Chord:         DefaultWingChord,
			AngleOfAttack: DefaultAngleOfAttack,
		},
		Propulsion: PropulsionConfig{
			Power: DefaultPower,
		},
		Flapping: FlappingConfig{},
		Weather: WeatherConfig{
			WindX:               5.0,
			WindZ:               2.0,
			TurbulenceIntensity: 0.1,
			GustFrequency:       0.1,
			GustStrength:        2.0,
			Temperature:         atmosphere.DefaultTemperature,
			Pressure:            atmosphere.DefaultPressure,
			Humidity:            atmosphere.DefaultHumidity,
		},
		Sim: SimConfig{
			Dt:       DefaultDt,
			Duration: DefaultDuration,
			Speed:    1.0,
			Gravity:  flight.DefaultGravity,
			Ground:   flight.DefaultGroundLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Weather converts the yaml weather block into atmosphere parameters.
func (c *Config) WeatherParams() atmosphere.Weather {
	return atmosphere.Weather{
		BaseWind:            vec.New(c.Weather.WindX, 0, c.Weather.WindZ),
		TurbulenceIntensity: c.Weather.TurbulenceIntensity,
		GustFrequency:       c.Weather.GustFrequency,
		GustStrength:        c.Weather.GustStrength,
		Temperature:         c.Weather.Temperature,
		Pressure:            c.Weather.Pressure,
		Humidity:            c.Weather.Humidity,
	}
}

// RunConfig converts the sim block into a batch run config.
func (c *Config) RunConfig() flight.Config {
	cfg := flight.DefaultConfig()
	cfg.Dt = c.Sim.Dt
	cfg.Duration = c.Sim.Duration
	cfg.Speed = c.Sim.Speed
	cfg.Seed = c.Sim.Seed
	return cfg
}

// Build materializes a Simulation with one flyer from the config.
func (c *Config) Build() *flight.Simulation {
	sim := flight.NewSimulation(c.WeatherParams(), c.Sim.Seed)
	if c.Sim.Gravity > 0 {
		sim.Gravity = c.Sim.Gravity
	}
	if c.Sim.Ground > 0 {
		sim.GroundLevel = c.Sim.Ground
	}
	if c.Sim.Speed > 0 {
		sim.Speed = c.Sim.Speed
	}

	body := flight.NewFlightBody(
		c.Flyer.Mass,
		vec.New(0, c.Flyer.SpawnAltitude, 0),
		vec.New(0, 0, c.Flyer.ForwardSpeed),
	)

	for i := 0; i < c.Wing.Count; i++ {
		w := flight.NewWing(c.Wing.Span, c.Wing.Chord)
		w.SetAngle(c.Wing.AngleOfAttack)
		if c.Wing.LiftSlope > 0 {
			w.LiftSlope = c.Wing.LiftSlope
		}
		if c.Wing.DragCoeff > 0 {
			w.DragCoeffBase = c.Wing.DragCoeff
		}
		if c.Wing.Oswald > 0 {
			w.Oswald = c.Wing.Oswald
		}
		body.AttachWing(w)
	}

	if c.Propulsion.Power > 0 {
		body.Propulsion = flight.NewPropulsion(c.Propulsion.Power)
		body.Propulsion.Throttle = c.Propulsion.Throttle
	}

	if c.Flapping.Enabled {
		f := flight.NewFlapping()
		if c.Flapping.Frequency > 0 {
			f.Frequency = c.Flapping.Frequency
		}
		if c.Flapping.Amplitude > 0 {
			f.Amplitude = c.Flapping.Amplitude
		}
		if c.Flapping.PowerStrokeRatio > 0 {
			f.PowerStrokeRatio = c.Flapping.PowerStrokeRatio
		}
		f.Active = true
		body.Flapping = f
	}

	sim.AddBody(body)
	return sim
}
