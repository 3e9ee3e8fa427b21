package atmosphere

import (
	"math"
	"math/rand"

	"github.com/NathanVRyver/Ascent/internal/vec"
)

// Sampler produces the wind field for a simulation. Gusts draw from a
// seeded source so runs are reproducible for a given seed.
type Sampler struct {
	Weather Weather
	rng     *rand.Rand
}

func NewSampler(w Weather, seed int64) *Sampler {
	return &Sampler{
		Weather: w,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// At samples the wind at a position and time: base wind plus phase-shifted
// sinusoidal turbulence plus an occasional gust impulse. Turbulence is
// bounded by 10·intensity per axis; gusts by the configured strength.
func (s *Sampler) At(position vec.Vec3, t float64) vec.Vec3 {
	w := s.Weather

	turbulence := vec.New(
		math.Sin(position.X*0.1+t*0.5)*w.TurbulenceIntensity,
		math.Cos(position.Y*0.15+t*0.7)*w.TurbulenceIntensity,
		math.Sin(position.Z*0.12+t*0.6)*w.TurbulenceIntensity,
	).Scale(10.0)

	wind := w.BaseWind.Add(turbulence)

	if s.rng.Float64() < w.GustFrequency {
		gust := vec.New(
			s.rng.Float64()*2-1,
			s.rng.Float64()-0.5,
			s.rng.Float64()*2-1,
		).Scale(w.GustStrength)
		wind = wind.Add(gust)
	}

	return wind
}

// Conditions derives the full atmosphere state at a position and time.
func (s *Sampler) Conditions(position vec.Vec3, t float64) Atmosphere {
	return Atmosphere{
		AirDensity:          AirDensity(s.Weather.Temperature, s.Weather.Pressure, s.Weather.Humidity),
		WindVelocity:        s.At(position, t),
		TurbulenceIntensity: s.Weather.TurbulenceIntensity,
		Temperature:         s.Weather.Temperature,
	}
}

// MaxWindSpeed bounds the magnitude the sampler can produce; tests assert
// against this envelope rather than exact values.
func (s *Sampler) MaxWindSpeed() float64 {
	w := s.Weather
	turbMax := 10 * w.TurbulenceIntensity * math.Sqrt(3)
	gustMax := w.GustStrength * math.Sqrt(1+0.25+1)
	return w.BaseWind.Len() + turbMax + gustMax
}
