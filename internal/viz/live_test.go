package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanVRyver/Ascent/internal/atmosphere"
	"github.com/NathanVRyver/Ascent/internal/flight"
	"github.com/NathanVRyver/Ascent/internal/vec"
)

func newViewSim() *flight.Simulation {
	sim := flight.NewSimulation(atmosphere.DefaultWeather(), 1)
	b := flight.NewFlightBody(80, vec.New(0, 50, 0), vec.New(0, 0, 10))
	b.AttachWing(flight.NewWing(3, 1))
	b.Propulsion = flight.NewPropulsion(300)
	sim.AddBody(b)
	return sim
}

func TestViewRendersHeaderAndStats(t *testing.T) {
	m := NewModel(newViewSim(), 60)
	view := m.View()

	if !strings.Contains(view, "ascent - human-powered flight") {
		t.Error("view must carry the header line")
	}
	for _, label := range []string{"altitude", "airspeed", "lift", "throttle"} {
		if !strings.Contains(view, label) {
			t.Errorf("stats panel missing %q", label)
		}
	}
	if !strings.Contains(view, "paused") {
		t.Error("fresh simulation should render as paused")
	}
}

func TestViewWithoutBody(t *testing.T) {
	m := NewModel(flight.NewSimulation(atmosphere.DefaultWeather(), 1), 60)
	if got := m.View(); got != "no flyer in simulation\n" {
		t.Errorf("empty simulation view = %q", got)
	}
}

func TestUpdateWithoutBodyIgnoresControls(t *testing.T) {
	m := NewModel(flight.NewSimulation(atmosphere.DefaultWeather(), 1), 60)

	// control keys must be a no-op rather than a nil dereference
	for _, r := range []rune{'w', 's', 't', 'g', 'f', 'r', ' '} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if _, cmd := m.Update(msg); cmd != nil {
			t.Errorf("key %q produced a command on an empty simulation", r)
		}
	}
}

func TestUpdateKeysDriveControls(t *testing.T) {
	sim := newViewSim()
	b := sim.Bodies[0]
	model := NewModel(sim, 60)
	key := func(r rune) tea.Msg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	}

	before := b.Wings[0].AngleOfAttack
	model.Update(key('w'))
	if b.Wings[0].AngleOfAttack <= before {
		t.Error("'w' must raise the angle of attack")
	}

	model.Update(key('t'))
	if b.Propulsion.Throttle != flight.ThrottleStep {
		t.Errorf("throttle = %v, want one step", b.Propulsion.Throttle)
	}

	model.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !sim.Running {
		t.Error("space must unpause the simulation")
	}
}
