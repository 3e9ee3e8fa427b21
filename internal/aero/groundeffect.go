package aero

import "math"

// GroundEffectFactor is the empirical wing-in-ground-effect lift multiplier
// built on the McCormick ratio phi = (16h/b)² / (1+(16h/b)²). For h/b >= 1
// the wing is out of ground effect and the factor is exactly 1; below that
// the factor 1/phi grows as the wing approaches the surface. h/b is floored
// at 0.01 to keep the factor finite on the ground.
func GroundEffectFactor(altitude, wingSpan float64) float64 {
	hOverB := altitude / wingSpan
	if hOverB >= 1.0 {
		return 1.0
	}
	if hOverB < 0.01 {
		hOverB = 0.01
	}
	r := 16.0 * hOverB
	phi := (r * r) / (1.0 + r*r)
	return 1.0 / phi
}

// GroundEffectDragReduction models the induced-drag relief near the
// surface; approaches 0.52 on the ground, 1 out of ground effect.
func GroundEffectDragReduction(altitude, wingSpan float64) float64 {
	hOverB := altitude / wingSpan
	if hOverB > 1.0 {
		return 1.0
	}
	return 1.0 - 0.48*math.Exp(-2.0*hOverB)
}
