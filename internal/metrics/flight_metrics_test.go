package metrics

import (
	"math"
	"testing"

	"github.com/NathanVRyver/Ascent/internal/flight"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

func bodyAt(altitude float64) *flight.FlightBody {
	b := flight.NewFlightBody(80, vec.New(0, altitude, 0), vec.Zero)
	b.Data.Altitude = altitude
	return b
}

func TestPeakAltitude(t *testing.T) {
	m := NewPeakAltitude()

	m.Observe(bodyAt(5), 0)
	m.Observe(bodyAt(42), 1)
	m.Observe(bodyAt(10), 2)

	if m.Value() != 42 {
		t.Errorf("peak = %v, want 42", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestDistanceReportsFinal(t *testing.T) {
	m := NewDistance()

	b := bodyAt(5)
	b.Data.DistanceTraveled = 100
	m.Observe(b, 0)
	b.Data.DistanceTraveled = 250
	m.Observe(b, 1)

	if m.Value() != 250 {
		t.Errorf("distance = %v, want final 250", m.Value())
	}
}

func TestAirborneTime(t *testing.T) {
	m := NewAirborneTime()

	b := bodyAt(5)
	m.Observe(b, 0)
	m.Observe(b, 1) // 1s airborne
	b.Grounded = true
	m.Observe(b, 2) // grounded, not counted
	b.Grounded = false
	m.Observe(b, 3) // 1s airborne again

	if math.Abs(m.Value()-2) > 1e-12 {
		t.Errorf("airborne time = %v, want 2", m.Value())
	}
}

func TestStallFraction(t *testing.T) {
	m := NewStallFraction()

	b := bodyAt(5)
	m.Observe(b, 0)
	b.Stalled = true
	m.Observe(b, 1)
	m.Observe(b, 2)
	b.Stalled = false
	m.Observe(b, 3)

	if m.Value() != 0.5 {
		t.Errorf("stall fraction = %v, want 0.5", m.Value())
	}
}

func TestCrashedWatchesEvents(t *testing.T) {
	m := NewCrashed()

	if m.Value() != 0 {
		t.Error("expected 0 before any event")
	}

	m.OnEvent(flight.Event{Class: flight.Touchdown})
	if m.Value() != 0 {
		t.Error("touchdown is not a crash")
	}

	m.OnEvent(flight.Event{Class: flight.Crash, ImpactSpeed: 25})
	if m.Value() != 1 {
		t.Error("crash event must latch the metric")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestEffortIntegratesThrottle(t *testing.T) {
	m := NewEffort()

	b := bodyAt(5)
	b.Propulsion = flight.NewPropulsion(300)
	b.Propulsion.Throttle = 0.5

	m.Observe(b, 0)
	m.Observe(b, 2) // 0.5 * 300W * 2s = 300 J

	if math.Abs(m.Value()-300) > 1e-9 {
		t.Errorf("effort = %v, want 300", m.Value())
	}
}
