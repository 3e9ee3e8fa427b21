// Package viz is the terminal presentation adapter: a live view over the
// simulation context with keyboard flight controls.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/NathanVRyver/Ascent/internal/flight"
)

const (
	canvasWidth   = 64
	canvasHeight  = 18
	historyWindow = 240
)

type TickMsg time.Time

// Model drives the live terminal view. It only reads and writes the
// documented simulation state; all physics stays in the flight package.
type Model struct {
	sim  *flight.Simulation
	body *flight.FlightBody
	fps  int

	altHistory []float64
	lastEvent  *flight.Event
	showHelp   bool
}

func NewModel(sim *flight.Simulation, fps int) Model {
	var body *flight.FlightBody
	if len(sim.Bodies) > 0 {
		body = sim.Bodies[0]
	}
	return Model{
		sim:        sim,
		body:       body,
		fps:        fps,
		altHistory: make([]float64, 0, historyWindow),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.body == nil {
			if s := msg.String(); s == "q" || s == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.TogglePause()
		case "w":
			for _, w := range m.body.Wings {
				w.AdjustAngle(flight.AngleStep)
			}
		case "s":
			for _, w := range m.body.Wings {
				w.AdjustAngle(-flight.AngleStep)
			}
		case "t":
			if m.body.Propulsion != nil {
				m.body.Propulsion.AdjustThrottle(flight.ThrottleStep)
			}
		case "g":
			if m.body.Propulsion != nil {
				m.body.Propulsion.AdjustThrottle(-flight.ThrottleStep)
			}
		case "f":
			if m.body.Flapping != nil {
				m.body.Flapping.Active = !m.body.Flapping.Active
			}
		case "+":
			m.sim.Speed = math.Min(m.sim.Speed*2, 16)
		case "-":
			m.sim.Speed = math.Max(m.sim.Speed/2, 0.25)
		case "r":
			m.sim.Reset()
			m.altHistory = m.altHistory[:0]
			m.lastEvent = nil
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		events := m.sim.Tick(1.0 / float64(m.fps))
		if len(events) > 0 {
			ev := events[len(events)-1]
			m.lastEvent = &ev
		}
		if m.sim.Running && m.body != nil {
			m.altHistory = append(m.altHistory, m.body.Data.Altitude)
			if len(m.altHistory) > historyWindow {
				m.altHistory = m.altHistory[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.body == nil {
		return "no flyer in simulation\n"
	}

	header := headerStyle.Render("ascent - human-powered flight")

	left := canvasStyle.Render(m.renderProfile())
	right := statsStyle.Render(m.renderStats())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	graph := ""
	if len(m.altHistory) > 2 {
		graph = graphStyle.Render(asciigraph.Plot(m.altHistory,
			asciigraph.Height(6), asciigraph.Width(canvasWidth+30),
			asciigraph.Caption("altitude (m)")))
	}

	help := helpStyle.Render("space pause · w/s angle · t/g throttle · f flap · +/- speed · r reset · q quit")
	if m.showHelp {
		help = helpStyle.Render(strings.Join([]string{
			"space  toggle pause",
			"w / s  angle of attack up / down",
			"t / g  throttle up / down",
			"f      toggle flapping",
			"+ / -  simulation speed",
			"r      reset to spawn state",
			"?      toggle this help",
			"q      quit",
		}, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, main, graph, help) + "\n"
}

// renderProfile draws a side view: altitude vertical, downrange distance
// implied by the trail, ground as a solid line.
func (m Model) renderProfile() string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", canvasWidth))
	}

	maxAlt := 10.0
	for _, a := range m.altHistory {
		maxAlt = math.Max(maxAlt, a)
	}

	// trail of recent altitudes, flyer at the right edge
	n := len(m.altHistory)
	for col := 0; col < canvasWidth; col++ {
		idx := n - canvasWidth + col
		if idx < 0 || idx >= n {
			continue
		}
		row := altToRow(m.altHistory[idx], maxAlt)
		if row >= 0 && row < canvasHeight-1 {
			grid[row][col] = '·'
		}
	}

	row := altToRow(m.body.Data.Altitude, maxAlt)
	if row >= 0 && row < canvasHeight-1 {
		glyph := '>'
		if m.body.Flapping != nil && m.body.Flapping.Active {
			if m.body.Flapping.Stroke() == flight.PowerStroke {
				glyph = 'v'
			} else {
				glyph = '^'
			}
		}
		grid[row][canvasWidth-1] = glyph
	}

	grid[canvasHeight-1] = []rune(strings.Repeat("▔", canvasWidth))

	lines := make([]string, canvasHeight)
	for i, r := range grid {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

func altToRow(alt, maxAlt float64) int {
	frac := alt / maxAlt
	return canvasHeight - 2 - int(frac*float64(canvasHeight-2))
}

func (m Model) renderStats() string {
	var b strings.Builder

	status := pausedStyle.Render("paused")
	if m.sim.Running {
		status = runningStyle.Render("running")
	}
	fmt.Fprintf(&b, "%s  x%.2g\n\n", status, m.sim.Speed)

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	d := m.body.Data
	row("altitude", fmt.Sprintf("%8.1f m", d.Altitude))
	row("airspeed", fmt.Sprintf("%8.1f m/s", d.Airspeed))
	row("vert speed", fmt.Sprintf("%+8.1f m/s", d.VerticalSpeed))
	row("flight time", fmt.Sprintf("%8.1f s", d.FlightTime))
	row("distance", fmt.Sprintf("%8.1f m", d.DistanceTraveled))
	b.WriteString("\n")

	f := m.body.Forces
	row("lift", fmt.Sprintf("%8.1f N", f.Lift.Len()))
	row("drag", fmt.Sprintf("%8.1f N", f.Drag.Len()))
	row("weight", fmt.Sprintf("%8.1f N", f.Weight.Len()))
	row("thrust", fmt.Sprintf("%8.1f N", f.Thrust.Len()))
	row("net", fmt.Sprintf("%8.1f N", f.Total.Len()))
	b.WriteString("\n")

	if len(m.body.Wings) > 0 {
		aoa := m.body.Wings[0].AngleOfAttack
		row("angle", fmt.Sprintf("%8.1f°", aoa*180/math.Pi))
	}
	if m.body.Propulsion != nil {
		row("throttle", fmt.Sprintf("%7.0f%%", m.body.Propulsion.Throttle*100))
	}
	row("wind", fmt.Sprintf("%8.1f m/s", m.sim.Atmos.WindVelocity.Len()))
	row("air density", fmt.Sprintf("%8.3f kg/m³", m.sim.Atmos.AirDensity))

	if m.body.Stalled {
		b.WriteString("\n" + stallStyle.Render(fmt.Sprintf("STALL %0.0f%%", m.body.StallSeverity*100)) + "\n")
	}
	if m.lastEvent != nil {
		style := valueStyle
		if m.lastEvent.Class == flight.Crash {
			style = crashStyle
		}
		b.WriteString("\n" + style.Render(m.lastEvent.String()) + "\n")
	}

	return b.String()
}

// RunLive starts the interactive terminal session.
func RunLive(sim *flight.Simulation, fps int) error {
	p := tea.NewProgram(NewModel(sim, fps))
	_, err := p.Run()
	return err
}
