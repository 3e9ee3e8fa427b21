package flight

import "fmt"

// Impact speed thresholds for ground-contact classification, m/s.
const (
	CrashSpeed       = 20.0
	HardLandingSpeed = 10.0
	SoftLandingSpeed = 3.0
)

// LandingClass grades a ground contact by impact speed.
type LandingClass int

const (
	Touchdown LandingClass = iota
	FirmLanding
	HardLanding
	Crash
)

func (c LandingClass) String() string {
	switch c {
	case Touchdown:
		return "touchdown"
	case FirmLanding:
		return "firm landing"
	case HardLanding:
		return "hard landing"
	case Crash:
		return "crash"
	}
	return "unknown"
}

// Event reports a ground contact. Failure in this model is an event, not
// an error.
type Event struct {
	Time        float64
	Class       LandingClass
	ImpactSpeed float64
}

func (e Event) String() string {
	return fmt.Sprintf("%s at t=%.2fs, impact %.1f m/s", e.Class, e.Time, e.ImpactSpeed)
}

// ClassifyImpact maps an impact speed onto a landing class.
func ClassifyImpact(speed float64) LandingClass {
	switch {
	case speed > CrashSpeed:
		return Crash
	case speed > HardLandingSpeed:
		return HardLanding
	case speed > SoftLandingSpeed:
		return FirmLanding
	default:
		return Touchdown
	}
}

// Integrate advances the body one semi-implicit Euler step (velocity
// first, then position, single substep) and resolves ground contact.
// Returns a non-nil Event on the Airborne->Grounded transition. The
// derived FlightData is recomputed unconditionally.
func Integrate(b *FlightBody, dt, groundLevel, t float64) *Event {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	displacement := b.Velocity.Scale(dt)
	b.Position = b.Position.Add(displacement)

	var event *Event
	if b.Position.Y <= groundLevel {
		impact := b.Velocity.Len()
		b.Position.Y = groundLevel
		wasAirborne := !b.Grounded
		b.Grounded = true

		class := ClassifyImpact(impact)
		switch class {
		case Crash:
			b.Velocity = b.Velocity.Scale(0)
			b.Acceleration = b.Acceleration.Scale(0)
		case HardLanding:
			b.Velocity = b.Velocity.Horizontal().Scale(0.3)
		case FirmLanding:
			b.Velocity = b.Velocity.Horizontal().Scale(0.7)
		case Touchdown:
			b.Velocity = b.Velocity.Horizontal().Scale(0.95)
		}

		if wasAirborne {
			event = &Event{Time: t, Class: class, ImpactSpeed: impact}
		}
	} else {
		// Re-ascent is implicit: once net upward force lifts the body
		// above ground level it is airborne again.
		b.Grounded = false
	}

	b.Data.Altitude = b.Position.Y
	b.Data.Airspeed = b.Velocity.Len()
	b.Data.VerticalSpeed = b.Velocity.Y
	b.Data.FlightTime += dt
	b.Data.DistanceTraveled += displacement.Len()

	return event
}
