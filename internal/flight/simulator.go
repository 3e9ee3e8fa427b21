package flight

import (
	"context"
	"fmt"
)

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(b *FlightBody, t float64)
	Value() float64
	Reset()
}

// EventWatcher is an optional Metric extension notified of ground events.
type EventWatcher interface {
	OnEvent(ev Event)
}

// Observer is notified after every integrated step.
type Observer interface {
	OnStep(b *FlightBody, t float64)
}

// Config drives a batch run.
type Config struct {
	Dt            float64
	Duration      float64
	Speed         float64
	Seed          int64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      30.0,
		Speed:         1.0,
		ValidateState: true,
	}
}

// StepError records a step that produced an invalid state.
type StepError struct {
	Time    float64
	Step    int
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// Result summarizes a batch run.
type Result struct {
	Times      []float64
	Events     []Event
	Metrics    map[string]float64
	Final      FlightData
	StepsTaken int
	Errors     []error
}

// Simulator runs a Simulation to completion without a frame clock,
// fanning each step out to metrics and observers.
type Simulator struct {
	sim       *Simulation
	metrics   []Metric
	observers []Observer
}

func NewSimulator(sim *Simulation) *Simulator {
	return &Simulator{sim: sim}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Simulation() *Simulation { return s.sim }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.sim.Speed = cfg.Speed
	s.sim.Running = true

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		events := s.sim.Tick(cfg.Dt)

		for _, b := range s.sim.Bodies {
			for _, m := range s.metrics {
				m.Observe(b, s.sim.Time)
			}
			for _, obs := range s.observers {
				obs.OnStep(b, s.sim.Time)
			}
		}
		for _, ev := range events {
			result.Events = append(result.Events, ev)
			for _, m := range s.metrics {
				if w, ok := m.(EventWatcher); ok {
					w.OnEvent(ev)
				}
			}
		}

		if cfg.ValidateState {
			if err := s.validBodies(i); err != nil {
				result.Errors = append(result.Errors, err)
				break
			}
		}

		result.StepsTaken++
		result.Times = append(result.Times, s.sim.Time)
	}

	s.sim.Running = false

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	if len(s.sim.Bodies) > 0 {
		result.Final = s.sim.Bodies[0].Data
	}

	return result, nil
}

func (s *Simulator) validBodies(step int) error {
	for _, b := range s.sim.Bodies {
		if !b.Position.IsValid() || !b.Velocity.IsValid() {
			return StepError{Time: s.sim.Time, Step: step, Message: "invalid state (NaN/Inf)"}
		}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %f", cfg.Speed)
	}
	return nil
}
