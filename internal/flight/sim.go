package flight

import (
	"github.com/NathanVRyver/Ascent/internal/atmosphere"
)

const (
	DefaultGravity     = 9.81
	DefaultGroundLevel = 0.5
)

// Simulation is the explicit context for one session: the flyers, the
// shared atmosphere and the global tick controls. There is one logical
// thread of mutation; the Running flag gates the whole tick.
type Simulation struct {
	Bodies []*FlightBody
	Wind   *atmosphere.Sampler
	Atmos  atmosphere.Atmosphere

	Gravity     float64
	GroundLevel float64
	Speed       float64 // simulation speed multiplier on frame dt
	Running     bool
	Time        float64

	Events []Event
}

// NewSimulation builds a context with the given weather and seed.
func NewSimulation(weather atmosphere.Weather, seed int64) *Simulation {
	return &Simulation{
		Wind:        atmosphere.NewSampler(weather, seed),
		Gravity:     DefaultGravity,
		GroundLevel: DefaultGroundLevel,
		Speed:       1.0,
	}
}

func (s *Simulation) AddBody(b *FlightBody) { s.Bodies = append(s.Bodies, b) }

// Tick runs one synchronous simulation step: recompute atmosphere,
// accumulate forces per body, integrate, advance flapping phase. Bodies
// are independent within a tick. A paused simulation mutates nothing.
func (s *Simulation) Tick(frameDt float64) []Event {
	if !s.Running {
		return nil
	}
	dt := frameDt * s.Speed

	var events []Event
	for _, b := range s.Bodies {
		s.Atmos = s.Wind.Conditions(b.Position, s.Time)
		Accumulate(b, s.Atmos, s.Gravity, s.GroundLevel)
		if ev := Integrate(b, dt, s.GroundLevel, s.Time); ev != nil {
			events = append(events, *ev)
		}
		if b.Flapping != nil {
			b.Flapping.Advance(dt)
		}
	}

	s.Time += dt
	s.Events = append(s.Events, events...)
	return events
}

// TogglePause flips the global pause flag.
func (s *Simulation) TogglePause() { s.Running = !s.Running }

// Reset restores every body to its spawn state in place and rewinds the
// clock. No teardown: the same entities carry on.
func (s *Simulation) Reset() {
	for _, b := range s.Bodies {
		b.Reset()
	}
	s.Time = 0
	s.Events = nil
	s.Running = false
}
