package aero

import "math"

type StallParams struct {
	CriticalAngle   float64 // rad
	PostStallFloor  float64 // CL retained deep into the stall
	ProgressionRate float64 // severity ramp per rad past critical
}

func DefaultStall() StallParams {
	return StallParams{
		CriticalAngle:   15 * math.Pi / 180,
		PostStallFloor:  0.5,
		ProgressionRate: 2.0,
	}
}

// StallFactor attenuates lift past the critical angle of attack. It is
// exactly 1 at or below critical and ramps down to PostStallFloor as the
// excess angle grows.
func StallFactor(angleOfAttack float64, p StallParams) float64 {
	if math.Abs(angleOfAttack) <= p.CriticalAngle {
		return 1.0
	}
	over := math.Abs(angleOfAttack) - p.CriticalAngle
	severity := math.Min(over*p.ProgressionRate, 1.0)
	return 1.0 - severity*(1.0-p.PostStallFloor)
}

// LiftCoefficient returns the stall-adjusted lift coefficient:
// liftSlope * sin(alpha), scaled by the stall factor.
func LiftCoefficient(liftSlope, angleOfAttack float64, p StallParams) float64 {
	return liftSlope * math.Sin(angleOfAttack) * StallFactor(angleOfAttack, p)
}

// StalledDragCoefficient inflates the base drag coefficient once the wing
// is past critical; the multiplier grows linearly to 4x at twice the
// critical angle.
func StalledDragCoefficient(baseCd, angleOfAttack float64, p StallParams) float64 {
	if math.Abs(angleOfAttack) <= p.CriticalAngle {
		return baseCd
	}
	severity := math.Min((math.Abs(angleOfAttack)-p.CriticalAngle)/p.CriticalAngle, 1.0)
	return baseCd * (1.0 + 3.0*severity)
}

// IsStalled reports whether the angle of attack is past critical, and how
// far into the stall on [0,1].
func IsStalled(angleOfAttack float64, p StallParams) (bool, float64) {
	if math.Abs(angleOfAttack) <= p.CriticalAngle {
		return false, 0
	}
	over := math.Abs(angleOfAttack) - p.CriticalAngle
	return true, math.Min(over*p.ProgressionRate, 1.0)
}
