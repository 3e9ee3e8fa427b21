package flight

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/vec"
)

// Stroke is the phase of the flapping cycle. The power stroke produces
// thrust; the recovery stroke repositions the wing and produces none.
type Stroke int

const (
	PowerStroke Stroke = iota
	RecoveryStroke
)

func (s Stroke) String() string {
	if s == PowerStroke {
		return "power"
	}
	return "recovery"
}

// FlappingWing drives a two-state flapping cycle from accumulated phase.
type FlappingWing struct {
	Frequency        float64 // Hz
	Amplitude        float64 // rad
	PowerStrokeRatio float64 // fraction of the cycle spent in power stroke
	Active           bool

	phase float64 // accumulated radians
}

func NewFlapping() *FlappingWing {
	return &FlappingWing{
		Frequency:        2.0,
		Amplitude:        45 * math.Pi / 180,
		PowerStrokeRatio: 0.3,
	}
}

// Advance accumulates phase while flapping is active.
func (f *FlappingWing) Advance(dt float64) {
	if !f.Active {
		return
	}
	f.phase += 2 * math.Pi * f.Frequency * dt
}

func (f *FlappingWing) Reset() {
	f.phase = 0
	f.Active = false
}

func (f *FlappingWing) Phase() float64 { return f.phase }

// normalized maps the accumulated phase onto [0,1) within the current cycle.
func (f *FlappingWing) normalized() float64 {
	return math.Mod(f.phase, 2*math.Pi) / (2 * math.Pi)
}

// Stroke reports which half of the cycle the wing is in.
func (f *FlappingWing) Stroke() Stroke {
	if f.normalized() < f.PowerStrokeRatio {
		return PowerStroke
	}
	return RecoveryStroke
}

// StrokeProgress is the position within the current stroke on [0,1).
func (f *FlappingWing) StrokeProgress() float64 {
	n := f.normalized()
	if n < f.PowerStrokeRatio {
		return n / f.PowerStrokeRatio
	}
	return (n - f.PowerStrokeRatio) / (1 - f.PowerStrokeRatio)
}

// Thrust is the impulse produced by the downstroke: dynamic pressure at
// the wingtip flapping speed over the wing area, split mostly forward
// with an upward component. Zero when inactive or in recovery.
func (f *FlappingWing) Thrust(wingArea, airDensity float64, forward vec.Vec3) vec.Vec3 {
	if !f.Active || f.Stroke() != PowerStroke {
		return vec.Zero
	}
	tipSpeed := f.Amplitude * f.Frequency * 2 * math.Pi * math.Cos(f.phase)
	const thrustCoeff = 0.8
	mag := 0.5 * airDensity * tipSpeed * tipSpeed * wingArea * thrustCoeff
	return forward.Scale(0.7 * mag).Add(vec.Up.Scale(0.3 * mag))
}
