package flight

import (
	"fmt"
	"math"

	"github.com/NathanVRyver/Ascent/internal/aero"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

// Control range for the wing angle of attack and the per-tick increments
// applied by discrete control inputs.
const (
	MinAngleOfAttack = -0.1
	MaxAngleOfAttack = 0.3
	AngleStep        = 0.01
	ThrottleStep     = 0.05
)

// Forces is the per-tick force record. Every component is recomputed from
// scratch each tick; nothing carries over.
type Forces struct {
	Lift   vec.Vec3
	Drag   vec.Vec3
	Weight vec.Vec3
	Thrust vec.Vec3
	Total  vec.Vec3
}

// FlightData is the derived read-model recomputed unconditionally each
// tick from the body transform and velocity.
type FlightData struct {
	Altitude         float64
	Airspeed         float64
	VerticalSpeed    float64
	FlightTime       float64
	DistanceTraveled float64
}

// Wing is a lifting surface attached to a FlightBody. AngleOfAttack is
// the mutable control input; everything else is airframe geometry.
type Wing struct {
	Span        float64
	Chord       float64
	Area        float64
	AspectRatio float64

	AngleOfAttack float64

	LiftSlope     float64 // CL per sin(alpha), ~2π for a thin airfoil
	DragCoeffBase float64
	Oswald        float64

	Stall aero.StallParams
}

// NewWing builds a wing panel from span and chord. The planform area uses
// a 0.8 taper factor; aspect ratio is span²/area.
func NewWing(span, chord float64) *Wing {
	area := span * chord * 0.8
	return &Wing{
		Span:          span,
		Chord:         chord,
		Area:          area,
		AspectRatio:   span * span / area,
		AngleOfAttack: 0.1,
		LiftSlope:     2 * math.Pi,
		DragCoeffBase: 0.02,
		Oswald:        0.85,
		Stall:         aero.DefaultStall(),
	}
}

// AdjustAngle nudges the angle of attack by delta, clamped to the control
// range.
func (w *Wing) AdjustAngle(delta float64) {
	w.SetAngle(w.AngleOfAttack + delta)
}

func (w *Wing) SetAngle(angle float64) {
	w.AngleOfAttack = math.Max(MinAngleOfAttack, math.Min(MaxAngleOfAttack, angle))
}

func (w *Wing) GetParams() map[string]float64 {
	return map[string]float64{
		"span":            w.Span,
		"chord":           w.Chord,
		"angle_of_attack": w.AngleOfAttack,
		"lift_slope":      w.LiftSlope,
		"drag_coeff":      w.DragCoeffBase,
		"oswald":          w.Oswald,
	}
}

func (w *Wing) SetParam(name string, value float64) error {
	switch name {
	case "span":
		w.Span = value
		w.Area = w.Span * w.Chord * 0.8
		w.AspectRatio = w.Span * w.Span / w.Area
	case "chord":
		w.Chord = value
		w.Area = w.Span * w.Chord * 0.8
		w.AspectRatio = w.Span * w.Span / w.Area
	case "angle_of_attack":
		w.SetAngle(value)
	case "lift_slope":
		w.LiftSlope = value
	case "drag_coeff":
		w.DragCoeffBase = value
	case "oswald":
		w.Oswald = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Propulsion is the pedal-driven propeller. Throttle is the mutable
// control input, clamped to [0,1].
type Propulsion struct {
	Power      float64 // watts at full throttle
	Efficiency float64
	Throttle   float64
	Direction  vec.Vec3
}

func NewPropulsion(power float64) *Propulsion {
	return &Propulsion{
		Power:      power,
		Efficiency: 0.85,
		Throttle:   0,
		Direction:  vec.New(0, 0, 1),
	}
}

func (p *Propulsion) AdjustThrottle(delta float64) {
	p.Throttle = math.Max(0, math.Min(1, p.Throttle+delta))
}

// FlightBody is one simulated flyer: mass, transform, accumulated forces
// and attached airframe components. Created at spawn, mutated every tick,
// reset in place.
type FlightBody struct {
	Mass float64

	Position     vec.Vec3
	Velocity     vec.Vec3
	Acceleration vec.Vec3
	Forces       Forces

	Wings      []*Wing
	Propulsion *Propulsion
	Flapping   *FlappingWing

	Grounded      bool
	Stalled       bool
	StallSeverity float64

	Data FlightData

	spawnPosition vec.Vec3
	spawnVelocity vec.Vec3
}

// NewFlightBody spawns a flyer and records the spawn transform for Reset.
func NewFlightBody(mass float64, position, velocity vec.Vec3) *FlightBody {
	b := &FlightBody{
		Mass:          mass,
		Position:      position,
		Velocity:      velocity,
		spawnPosition: position,
		spawnVelocity: velocity,
	}
	b.Data = FlightData{
		Altitude:      position.Y,
		Airspeed:      velocity.Len(),
		VerticalSpeed: velocity.Y,
	}
	return b
}

func (b *FlightBody) AttachWing(w *Wing) { b.Wings = append(b.Wings, w) }

// WingArea is the summed planform area of all attached wings.
func (b *FlightBody) WingArea() float64 {
	total := 0.0
	for _, w := range b.Wings {
		total += w.Area
	}
	return total
}

// Reset restores the spawn-time transform and zeroes all accumulated
// state in place. The spawn constants come back bit-for-bit.
func (b *FlightBody) Reset() {
	b.Position = b.spawnPosition
	b.Velocity = b.spawnVelocity
	b.Acceleration = vec.Zero
	b.Forces = Forces{}
	b.Grounded = false
	b.Stalled = false
	b.StallSeverity = 0
	b.Data = FlightData{
		Altitude:      b.spawnPosition.Y,
		Airspeed:      b.spawnVelocity.Len(),
		VerticalSpeed: b.spawnVelocity.Y,
	}
	if b.Flapping != nil {
		b.Flapping.Reset()
	}
	if b.Propulsion != nil {
		b.Propulsion.Throttle = 0
	}
}
