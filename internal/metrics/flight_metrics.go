// Package metrics provides scalar run metrics over the flight simulation.
package metrics

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/flight"
)

// PeakAltitude tracks the highest altitude reached during a run.
type PeakAltitude struct {
	peak float64
}

func NewPeakAltitude() *PeakAltitude { return &PeakAltitude{} }

func (m *PeakAltitude) Name() string { return "peak_altitude" }

func (m *PeakAltitude) Observe(b *flight.FlightBody, t float64) {
	m.peak = math.Max(m.peak, b.Data.Altitude)
}

func (m *PeakAltitude) Value() float64 { return m.peak }
func (m *PeakAltitude) Reset()         { m.peak = 0 }

// Distance reports the cumulative distance traveled at the end of a run.
type Distance struct {
	distance float64
}

func NewDistance() *Distance { return &Distance{} }

func (m *Distance) Name() string { return "distance" }

func (m *Distance) Observe(b *flight.FlightBody, t float64) {
	m.distance = b.Data.DistanceTraveled
}

func (m *Distance) Value() float64 { return m.distance }
func (m *Distance) Reset()         { m.distance = 0 }

// AirborneTime accumulates the simulated time spent off the ground.
type AirborneTime struct {
	total float64
	prevT float64
	seen  bool
}

func NewAirborneTime() *AirborneTime { return &AirborneTime{} }

func (m *AirborneTime) Name() string { return "airborne_time" }

func (m *AirborneTime) Observe(b *flight.FlightBody, t float64) {
	if m.seen && !b.Grounded {
		m.total += t - m.prevT
	}
	m.prevT = t
	m.seen = true
}

func (m *AirborneTime) Value() float64 { return m.total }

func (m *AirborneTime) Reset() {
	m.total = 0
	m.prevT = 0
	m.seen = false
}

// StallFraction is the fraction of observed steps spent past the critical
// angle of attack.
type StallFraction struct {
	stalled int
	samples int
}

func NewStallFraction() *StallFraction { return &StallFraction{} }

func (m *StallFraction) Name() string { return "stall_fraction" }

func (m *StallFraction) Observe(b *flight.FlightBody, t float64) {
	if b.Stalled {
		m.stalled++
	}
	m.samples++
}

func (m *StallFraction) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.stalled) / float64(m.samples)
}

func (m *StallFraction) Reset() {
	m.stalled = 0
	m.samples = 0
}

// Crashed is 1 once any ground contact classifies as a crash.
type Crashed struct {
	crashed bool
}

func NewCrashed() *Crashed { return &Crashed{} }

func (m *Crashed) Name() string { return "crashed" }

func (m *Crashed) Observe(b *flight.FlightBody, t float64) {}

func (m *Crashed) OnEvent(ev flight.Event) {
	if ev.Class == flight.Crash {
		m.crashed = true
	}
}

func (m *Crashed) Value() float64 {
	if m.crashed {
		return 1
	}
	return 0
}

func (m *Crashed) Reset() { m.crashed = false }

// Effort integrates throttle over time as a proxy for pilot energy spent.
type Effort struct {
	total float64
	prevT float64
	seen  bool
}

func NewEffort() *Effort { return &Effort{} }

func (m *Effort) Name() string { return "effort" }

func (m *Effort) Observe(b *flight.FlightBody, t float64) {
	if m.seen && b.Propulsion != nil {
		m.total += b.Propulsion.Throttle * b.Propulsion.Power * (t - m.prevT)
	}
	m.prevT = t
	m.seen = true
}

func (m *Effort) Value() float64 { return m.total }

func (m *Effort) Reset() {
	m.total = 0
	m.prevT = 0
	m.seen = false
}
