// Package atmosphere models the air mass the flyer moves through: density
// from weather parameters and a wind field with turbulence and gusts.
package atmosphere

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/vec"
)

const (
	rDryAir     = 287.05  // J/(kg·K)
	rWaterVapor = 461.495 // J/(kg·K)

	DefaultTemperature = 15.0     // °C
	DefaultPressure    = 101325.0 // Pa
	DefaultHumidity    = 0.5
)

// Weather holds the slider-level inputs the atmosphere is derived from.
type Weather struct {
	BaseWind            vec.Vec3
	TurbulenceIntensity float64
	GustFrequency       float64 // per-tick gust chance, 0..1
	GustStrength        float64 // m/s
	Temperature         float64 // °C
	Pressure            float64 // Pa
	Humidity            float64 // relative, 0..1
}

func DefaultWeather() Weather {
	return Weather{
		BaseWind:            vec.New(5, 0, 2),
		TurbulenceIntensity: 0.1,
		GustFrequency:       0.1,
		GustStrength:        2.0,
		Temperature:         DefaultTemperature,
		Pressure:            DefaultPressure,
		Humidity:            DefaultHumidity,
	}
}

// Atmosphere is the per-tick derived state consumed by the force
// accumulator. One instance per simulation, recomputed every tick.
type Atmosphere struct {
	AirDensity          float64
	WindVelocity        vec.Vec3
	TurbulenceIntensity float64
	Temperature         float64
}

// AirDensity computes moist-air density from the dry-air and water-vapor
// partial pressures (Arden Buck saturation pressure, ideal gas mixture).
func AirDensity(temperatureC, pressurePa, humidity float64) float64 {
	tempK := temperatureC + 273.15
	saturation := 611.0 * math.Exp(17.502*temperatureC/(240.97+temperatureC))
	vapor := humidity * saturation
	dry := pressurePa - vapor
	return dry/(rDryAir*tempK) + vapor/(rWaterVapor*tempK)
}

// DensityAltitude converts a pressure altitude and outside temperature to
// the altitude the airframe effectively performs at.
func DensityAltitude(pressureAltitude, temperatureC float64) float64 {
	standardTemp := 15.0 - 0.00198*pressureAltitude
	return pressureAltitude + 37.2*(temperatureC-standardTemp)
}

// RelativeAirspeed is the aircraft velocity seen by the airframe once the
// moving air mass is subtracted.
func RelativeAirspeed(velocity, wind vec.Vec3) vec.Vec3 {
	return velocity.Sub(wind)
}
