package aero

import (
	"github.com/NathanVRyver/Ascent/internal/vec"
)

type LiftParams struct {
	AirDensity float64
	Relative   vec.Vec3 // velocity relative to the air mass
	WingArea   float64
	LiftCoeff  float64
}

// LiftMagnitude is the classic CL * q * S with dynamic pressure q = ½ρv².
func LiftMagnitude(airDensity, airSpeed, wingArea, liftCoeff float64) float64 {
	return 0.5 * airDensity * airSpeed * airSpeed * wingArea * liftCoeff
}

// Lift returns the lift force vector: magnitude CL·½ρ|v|²·S, directed
// perpendicular to the relative velocity within the vertical plane that
// contains it. Near-zero airspeed returns the zero vector.
func Lift(p LiftParams) vec.Vec3 {
	speed := p.Relative.Len()
	if speed < vec.Epsilon {
		return vec.Zero
	}

	dir := liftDirection(p.Relative)
	mag := LiftMagnitude(p.AirDensity, speed, p.WingArea, p.LiftCoeff)
	return dir.Scale(mag)
}

// liftDirection rotates world-up out of the flight path: the component of
// up perpendicular to the relative velocity. Falls back to plain up for
// purely vertical flight, where the perpendicular is degenerate.
func liftDirection(relative vec.Vec3) vec.Vec3 {
	v := relative.Normalize()
	perp := vec.Up.Sub(v.Scale(v.Dot(vec.Up)))
	if perp.Len() < vec.Epsilon {
		return vec.Up
	}
	return perp.Normalize()
}
