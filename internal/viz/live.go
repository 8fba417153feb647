package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

const (
	liveWidth       = 48
	liveHeight      = 16
	traceCapacity   = 240
	liveFPS         = 30
	// Real spin speeds are far too fast for a terminal; the cross-section
	// rotates at a fixed visual rate while the trace replays the true signal.
	visualRevPerSec = 0.5
)

type TickMsg time.Time

// LiveModel animates one rotor case: the spinning cross-section next to the
// scrolling displacement proxy trace.
type LiveModel struct {
	rotorCase rotor.Case
	result    *rotor.Result
	omega     float64

	t       float64
	angle   float64
	trace   []float64
	running bool
	canvas  *Canvas
}

func NewLiveModel(c rotor.Case, result *rotor.Result, omega float64) LiveModel {
	return LiveModel{
		rotorCase: c,
		result:    result,
		omega:     omega,
		trace:     make([]float64, 0, traceCapacity),
		running:   true,
		canvas:    NewCanvas(liveWidth, liveHeight),
	}
}

func (m LiveModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/liveFPS, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.angle = 0
			m.trace = m.trace[:0]
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) step() {
	dt := 1.0 / liveFPS
	m.t += dt
	m.angle += 2 * math.Pi * visualRevPerSec * dt

	// Displacement replays the closed-form signal at the visual rate.
	displacement := m.result.RadialOffset * math.Sin(m.angle)
	m.trace = append(m.trace, displacement)
	if len(m.trace) > traceCapacity {
		m.trace = m.trace[1:]
	}
}

func (m *LiveModel) drawRotor() string {
	m.canvas.Clear()
	cw, ch := m.canvas.PixelSize()
	cx, cy := cw/2, ch/2

	maxR := m.result.RadialOffset
	for _, comp := range m.rotorCase.Components {
		if r := comp.Position.PlanarNorm(); r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}

	diskR := minInt(cx, cy) - 2
	scale := float64(diskR) * 0.85 / maxR
	cosA, sinA := math.Cos(m.angle), math.Sin(m.angle)

	m.canvas.DrawCircle(cx, cy, diskR)
	m.canvas.Set(cx, cy)

	for _, comp := range m.rotorCase.Components {
		// Rotate the rotor-fixed position into the lab frame.
		x := comp.Position.X*cosA - comp.Position.Y*sinA
		y := comp.Position.X*sinA + comp.Position.Y*cosA
		m.canvas.DrawDot(cx+int(x*scale), cy-int(y*scale/2), 1)
	}

	comX := m.result.CenterOfMass.X*cosA - m.result.CenterOfMass.Y*sinA
	comY := m.result.CenterOfMass.X*sinA + m.result.CenterOfMass.Y*cosA
	px, py := cx+int(comX*scale), cy-int(comY*scale/2)
	m.canvas.DrawLine(px-3, py, px+3, py)
	m.canvas.DrawLine(px, py-3, px, py+3)

	return m.canvas.String()
}

func (m LiveModel) View() string {
	rotorView := lipgloss.NewStyle().Padding(1, 2).Render(m.drawRotor())

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.rotorCase.Name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(SubtleStyle.Render(status) + "\n\n")

	if len(m.trace) > 1 {
		chart := asciigraph.Plot(m.trace,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption("displacement proxy"),
		)
		s.WriteString(chart + "\n\n")
	}

	s.WriteString(LabelStyle.Render("Time") + ValueStyle.Render(fmt.Sprintf("%.1fs", m.t)) + "\n")
	s.WriteString(LabelStyle.Render("Spin speed") + ValueStyle.Render(fmt.Sprintf("%.1f rad/s", m.omega)) + "\n")
	s.WriteString(LabelStyle.Render("Radial offset") + ValueStyle.Render(fmt.Sprintf("%.6f m", m.result.RadialOffset)) + "\n")
	s.WriteString(LabelStyle.Render("Centrifugal force") + ValueStyle.Render(fmt.Sprintf("%.2f N", m.result.CentrifugalForce)) + "\n")
	s.WriteString(SubtleStyle.Render("\nSP:Pause R:Reset Q:Quit"))

	stats := PanelStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, rotorView, stats)
}
