package aero

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/vec"
)

type ThrustParams struct {
	Power      float64 // watts of pilot output at full throttle
	Throttle   float64 // 0..1
	Efficiency float64
	Direction  vec.Vec3 // unit thrust direction
	Velocity   vec.Vec3
}

// thrust falls off as airspeed along the thrust axis approaches the
// propeller-limited speed; capped at an 80% reduction.
const propLimitSpeed = 50.0

// Thrust returns the net propulsive force. Static thrust is
// power·throttle·efficiency, derated by the velocity component along the
// thrust direction.
func Thrust(p ThrustParams) vec.Vec3 {
	static := p.Power * p.Throttle * p.Efficiency
	along := p.Velocity.Dot(p.Direction)
	factor := 1.0 - clamp(along/propLimitSpeed, 0, 0.8)
	return p.Direction.Scale(static * factor)
}

// PropellerEfficiency is a gaussian efficiency curve over advance ratio,
// peaking at 0.85·100% around J=0.8. Outside [0,2] the prop is useless.
func PropellerEfficiency(advanceRatio float64) float64 {
	if advanceRatio < 0 || advanceRatio > 2 {
		return 0
	}
	const peak, width = 0.8, 0.5
	d := advanceRatio - peak
	return math.Exp(-d*d/(2*width*width)) * 0.85
}

// AdvanceRatio is forward speed over prop tip advance per revolution.
func AdvanceRatio(velocity, rpm, diameter float64) float64 {
	if rpm <= 0 || diameter <= 0 {
		return 0
	}
	return velocity / (rpm / 60.0 * diameter)
}

// TakeoffDistance estimates the ground roll to reach liftoff speed under
// constant acceleration. Non-positive acceleration never reaches liftoff
// and reports +Inf as a sentinel.
func TakeoffDistance(liftoffSpeed, acceleration float64) float64 {
	if acceleration <= 0 {
		return math.Inf(1)
	}
	return liftoffSpeed * liftoffSpeed / (2 * acceleration)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
