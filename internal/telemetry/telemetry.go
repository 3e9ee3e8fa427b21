// Package telemetry samples flight state into row-oriented records with a
// fixed column schema and serializes them as CSV.
package telemetry

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/NathanVRyver/Ascent/internal/flight"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

// Sample is one telemetry row.
type Sample struct {
	Time          float64
	Position      vec.Vec3
	Velocity      vec.Vec3
	Acceleration  vec.Vec3
	Altitude      float64
	Airspeed      float64
	VerticalSpeed float64
	AngleOfAttack float64
	Lift          float64
	Drag          float64
	Thrust        float64
	Net           float64
	Stalled       bool
	Flapping      bool
	WindSpeed     float64
	AirDensity    float64
}

// Header is the fixed CSV column order. Consumers key on these names.
func Header() []string {
	return []string{
		"time",
		"position_x", "position_y", "position_z",
		"velocity_x", "velocity_y", "velocity_z",
		"acceleration_x", "acceleration_y", "acceleration_z",
		"altitude", "airspeed", "vertical_speed",
		"angle_of_attack",
		"lift_force", "drag_force", "thrust_force", "net_force",
		"stalled", "flapping",
		"wind_speed", "air_density",
	}
}

func (s Sample) Row() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	b := func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	}
	return []string{
		f(s.Time),
		f(s.Position.X), f(s.Position.Y), f(s.Position.Z),
		f(s.Velocity.X), f(s.Velocity.Y), f(s.Velocity.Z),
		f(s.Acceleration.X), f(s.Acceleration.Y), f(s.Acceleration.Z),
		f(s.Altitude), f(s.Airspeed), f(s.VerticalSpeed),
		f(s.AngleOfAttack),
		f(s.Lift), f(s.Drag), f(s.Thrust), f(s.Net),
		b(s.Stalled), b(s.Flapping),
		f(s.WindSpeed), f(s.AirDensity),
	}
}

const DefaultMaxSamples = 10000

// Sampler is a flight.Observer that records a Sample at most once per
// interval, keeping a capped window of the most recent rows.
type Sampler struct {
	Interval   float64
	MaxSamples int

	sim     *flight.Simulation
	samples []Sample
	last    float64
	started bool
}

func NewSampler(sim *flight.Simulation, interval float64) *Sampler {
	return &Sampler{
		Interval:   interval,
		MaxSamples: DefaultMaxSamples,
		sim:        sim,
	}
}

func (s *Sampler) OnStep(b *flight.FlightBody, t float64) {
	if s.started && t-s.last < s.Interval {
		return
	}
	s.started = true
	s.last = t

	aoa := 0.0
	if len(b.Wings) > 0 {
		aoa = b.Wings[0].AngleOfAttack
	}
	flapping := b.Flapping != nil && b.Flapping.Active

	s.samples = append(s.samples, Sample{
		Time:          t,
		Position:      b.Position,
		Velocity:      b.Velocity,
		Acceleration:  b.Acceleration,
		Altitude:      b.Data.Altitude,
		Airspeed:      b.Data.Airspeed,
		VerticalSpeed: b.Data.VerticalSpeed,
		AngleOfAttack: aoa,
		Lift:          b.Forces.Lift.Len(),
		Drag:          b.Forces.Drag.Len(),
		Thrust:        b.Forces.Thrust.Len(),
		Net:           b.Forces.Total.Len(),
		Stalled:       b.Stalled,
		Flapping:      flapping,
		WindSpeed:     s.sim.Atmos.WindVelocity.Len(),
		AirDensity:    s.sim.Atmos.AirDensity,
	})

	if s.MaxSamples > 0 && len(s.samples) > s.MaxSamples {
		s.samples = s.samples[len(s.samples)-s.MaxSamples:]
	}
}

func (s *Sampler) Samples() []Sample { return s.samples }

// WriteCSV serializes samples with the fixed header.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, s := range samples {
		if err := cw.Write(s.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
