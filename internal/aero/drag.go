package aero

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/vec"
)

type DragParams struct {
	AirDensity  float64
	Relative    vec.Vec3 // velocity relative to the air mass
	WingArea    float64
	DragCoeff   float64
	AspectRatio float64
	Oswald      float64 // oswald efficiency factor, <1
}

// ParasiticDrag opposes the relative velocity with magnitude CD·½ρ|v|²·S.
// Near-zero airspeed returns the zero vector.
func ParasiticDrag(p DragParams) vec.Vec3 {
	speed := p.Relative.Len()
	if speed < vec.Epsilon {
		return vec.Zero
	}
	mag := 0.5 * p.AirDensity * speed * speed * p.WingArea * p.DragCoeff
	return p.Relative.Normalize().Scale(-mag)
}

// InducedDragCoefficient is CL²/(π·AR·e), the lift-dependent drag penalty.
func InducedDragCoefficient(liftCoeff, aspectRatio, oswald float64) float64 {
	return liftCoeff * liftCoeff / (math.Pi * aspectRatio * oswald)
}

// InducedDrag applies the induced drag coefficient along -v.
func InducedDrag(p DragParams, liftCoeff float64) vec.Vec3 {
	speed := p.Relative.Len()
	if speed < vec.Epsilon {
		return vec.Zero
	}
	cdi := InducedDragCoefficient(liftCoeff, p.AspectRatio, p.Oswald)
	mag := 0.5 * p.AirDensity * speed * speed * p.WingArea * cdi
	return p.Relative.Normalize().Scale(-mag)
}

// TotalDrag sums parasitic and induced drag for a wing.
func TotalDrag(p DragParams, liftCoeff float64) vec.Vec3 {
	return ParasiticDrag(p).Add(InducedDrag(p, liftCoeff))
}

// DragCoefficient adds the angle-of-attack-linear term to the base profile
// drag coefficient.
func DragCoefficient(baseCd, angleOfAttack float64) float64 {
	return baseCd + 0.02*math.Abs(angleOfAttack)
}

// InterferencePenalty scales drag for multi-wing configurations where the
// panels fly in each other's wake. Identity for a single wing.
func InterferencePenalty(wingCount int) float64 {
	if wingCount <= 1 {
		return 1.0
	}
	return 1.0 + 0.05*float64(wingCount-1)
}
