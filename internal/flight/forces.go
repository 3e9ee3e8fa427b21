package flight

import (
	"math"

	"github.com/NathanVRyver/Ascent/internal/aero"
	"github.com/NathanVRyver/Ascent/internal/atmosphere"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

// Accumulate rebuilds the body's force record for this tick: weight, lift
// and drag summed over all wings with ground-effect and stall corrections,
// propulsion thrust and flapping thrust. Acceleration follows from the
// total. Nothing from the previous tick is carried over.
func Accumulate(b *FlightBody, atmos atmosphere.Atmosphere, gravity, groundLevel float64) {
	b.Forces = Forces{}
	b.Forces.Weight = vec.Down.Scale(b.Mass * gravity)

	relative := atmosphere.RelativeAirspeed(b.Velocity, atmos.WindVelocity)
	altitudeAGL := math.Max(b.Position.Y-groundLevel, 0)
	interference := aero.InterferencePenalty(len(b.Wings))

	b.Stalled = false
	b.StallSeverity = 0

	for _, w := range b.Wings {
		cl := aero.LiftCoefficient(w.LiftSlope, w.AngleOfAttack, w.Stall)

		lift := aero.Lift(aero.LiftParams{
			AirDensity: atmos.AirDensity,
			Relative:   relative,
			WingArea:   w.Area,
			LiftCoeff:  cl,
		})
		lift = lift.Scale(aero.GroundEffectFactor(altitudeAGL, w.Span))
		b.Forces.Lift = b.Forces.Lift.Add(lift)

		cd := aero.DragCoefficient(w.DragCoeffBase, w.AngleOfAttack)
		cd = aero.StalledDragCoefficient(cd, w.AngleOfAttack, w.Stall)
		cd *= interference

		drag := aero.TotalDrag(aero.DragParams{
			AirDensity:  atmos.AirDensity,
			Relative:    relative,
			WingArea:    w.Area,
			DragCoeff:   cd,
			AspectRatio: w.AspectRatio,
			Oswald:      w.Oswald,
		}, cl)
		drag = drag.Scale(aero.GroundEffectDragReduction(altitudeAGL, w.Span))
		b.Forces.Drag = b.Forces.Drag.Add(drag)

		if stalled, severity := aero.IsStalled(w.AngleOfAttack, w.Stall); stalled {
			b.Stalled = true
			b.StallSeverity = math.Max(b.StallSeverity, severity)
		}
	}

	forward := vec.New(0, 0, 1)
	if b.Propulsion != nil {
		forward = b.Propulsion.Direction
		b.Forces.Thrust = aero.Thrust(aero.ThrustParams{
			Power:      b.Propulsion.Power,
			Throttle:   b.Propulsion.Throttle,
			Efficiency: b.Propulsion.Efficiency,
			Direction:  b.Propulsion.Direction,
			Velocity:   b.Velocity,
		})
	}
	if b.Flapping != nil {
		flap := b.Flapping.Thrust(b.WingArea(), atmos.AirDensity, forward)
		b.Forces.Thrust = b.Forces.Thrust.Add(flap)
	}

	b.Forces.Total = b.Forces.Weight.
		Add(b.Forces.Lift).
		Add(b.Forces.Drag).
		Add(b.Forces.Thrust)
	b.Acceleration = b.Forces.Total.Scale(1 / b.Mass)
}
