package flight

import (
	"context"
	"math"
	"testing"

	"github.com/NathanVRyver/Ascent/internal/atmosphere"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

func calmWeather() atmosphere.Weather {
	return atmosphere.Weather{
		Temperature: 15,
		Pressure:    101325,
		Humidity:    0.5,
	}
}

func newTestSim() *Simulation {
	sim := NewSimulation(calmWeather(), 42)
	body := NewFlightBody(80, vec.New(0, 50, 0), vec.New(0, 0, 10))
	body.AttachWing(NewWing(3, 1))
	body.AttachWing(NewWing(3, 1))
	sim.AddBody(body)
	return sim
}

func TestPausedTickMutatesNothing(t *testing.T) {
	sim := newTestSim()
	b := sim.Bodies[0]
	pos, velocity := b.Position, b.Velocity

	if events := sim.Tick(0.01); events != nil {
		t.Errorf("paused tick returned events: %v", events)
	}
	if b.Position != pos || b.Velocity != velocity {
		t.Error("paused tick must not mutate state")
	}
	if sim.Time != 0 {
		t.Error("paused tick must not advance the clock")
	}
}

func TestTickAdvancesState(t *testing.T) {
	sim := newTestSim()
	sim.Running = true
	b := sim.Bodies[0]

	sim.Tick(0.01)

	if b.Position == (vec.Vec3{X: 0, Y: 50, Z: 0}) {
		t.Error("tick should move the body")
	}
	if math.Abs(sim.Time-0.01) > 1e-12 {
		t.Errorf("time = %v", sim.Time)
	}
	if (b.Forces == Forces{}) {
		t.Error("tick must populate the force record")
	}
}

func TestSpeedMultiplier(t *testing.T) {
	sim := newTestSim()
	sim.Running = true
	sim.Speed = 4

	sim.Tick(0.01)

	if math.Abs(sim.Time-0.04) > 1e-12 {
		t.Errorf("time with 4x speed = %v, want 0.04", sim.Time)
	}
	if math.Abs(sim.Bodies[0].Data.FlightTime-0.04) > 1e-12 {
		t.Errorf("flight time = %v, want scaled dt", sim.Bodies[0].Data.FlightTime)
	}
}

func TestSimulationReset(t *testing.T) {
	sim := newTestSim()
	sim.Running = true
	for i := 0; i < 100; i++ {
		sim.Tick(0.01)
	}

	sim.Reset()

	if sim.Time != 0 || sim.Running {
		t.Error("reset must rewind the clock and pause")
	}
	if sim.Events != nil {
		t.Error("reset must clear events")
	}
	b := sim.Bodies[0]
	if b.Position != vec.New(0, 50, 0) || b.Velocity != vec.New(0, 0, 10) {
		t.Error("reset must restore spawn state")
	}
}

func TestBodiesIndependentWithinTick(t *testing.T) {
	sim := NewSimulation(calmWeather(), 1)
	a := NewFlightBody(80, vec.New(0, 50, 0), vec.New(0, 0, 10))
	a.AttachWing(NewWing(3, 1))
	sim.AddBody(a)

	solo := NewSimulation(calmWeather(), 1)
	clone := NewFlightBody(80, vec.New(0, 50, 0), vec.New(0, 0, 10))
	clone.AttachWing(NewWing(3, 1))
	solo.AddBody(clone)

	// adding a second flyer must not change the first one's trajectory
	other := NewFlightBody(60, vec.New(100, 30, 0), vec.New(0, 0, 5))
	other.AttachWing(NewWing(2, 0.8))
	sim.AddBody(other)

	sim.Running = true
	solo.Running = true
	sim.Tick(0.01)
	solo.Tick(0.01)

	if a.Position != clone.Position || a.Velocity != clone.Velocity {
		t.Error("cross-entity interaction detected; bodies must be independent")
	}
}

type countingMetric struct {
	observed int
}

func (m *countingMetric) Name() string                     { return "count" }
func (m *countingMetric) Observe(b *FlightBody, t float64) { m.observed++ }
func (m *countingMetric) Value() float64                   { return float64(m.observed) }
func (m *countingMetric) Reset()                           { m.observed = 0 }

type eventCounter struct {
	countingMetric
	events int
}

func (m *eventCounter) OnEvent(ev Event) { m.events++ }

func TestSimulatorRun(t *testing.T) {
	sim := newTestSim()
	simulator := NewSimulator(sim)
	counter := &countingMetric{}
	simulator.AddMetric(counter)

	cfg := DefaultConfig()
	cfg.Dt = 0.01
	cfg.Duration = 1.0

	result, err := simulator.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("steps = %d, want 100", result.StepsTaken)
	}
	// two bodies observed per step
	if result.Metrics["count"] != 200 {
		t.Errorf("metric observations = %v, want 200", result.Metrics["count"])
	}
	if math.Abs(result.Final.FlightTime-1.0) > 1e-9 {
		t.Errorf("final flight time = %v", result.Final.FlightTime)
	}
	if sim.Running {
		t.Error("batch run must leave the simulation paused")
	}
}

func TestSimulatorRunHasOneBodyPerObservation(t *testing.T) {
	sim := NewSimulation(calmWeather(), 7)
	b := NewFlightBody(80, vec.New(0, 0.6, 0), vec.New(0, -30, 0))
	sim.AddBody(b)

	simulator := NewSimulator(sim)
	counter := &eventCounter{}
	simulator.AddMetric(counter)

	cfg := DefaultConfig()
	cfg.Dt = 0.01
	cfg.Duration = 0.5

	result, err := simulator.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Events) == 0 {
		t.Fatal("falling body must report a ground event")
	}
	if result.Events[0].Class != Crash {
		t.Errorf("30 m/s impact should crash, got %v", result.Events[0].Class)
	}
	if counter.events != len(result.Events) {
		t.Errorf("event watcher saw %d events, result has %d", counter.events, len(result.Events))
	}
}

func TestSimulatorRunCancellation(t *testing.T) {
	sim := newTestSim()
	simulator := NewSimulator(sim)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulator.Run(ctx, DefaultConfig())
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSimulatorRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(&cfg)
			if _, err := NewSimulator(newTestSim()).Run(context.Background(), cfg); err == nil {
				t.Error("expected config validation error")
			}
		})
	}
}
