// Package tui is the interactive step-through viewer. It plays both
// roles the engine serves in production: manual navigation (internal
// mode) and a simulated tutoring conversation pushing step overrides
// (override mode), so the hand-off between the two is visible.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmall/stepdiag/internal/choreo"
	"github.com/kmall/stepdiag/internal/render"
	"github.com/kmall/stepdiag/internal/scenario"
	"github.com/kmall/stepdiag/internal/steps"
	"github.com/kmall/stepdiag/internal/stepsync"
)

var (
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// tutorTick is the cadence of the simulated conversation driver.
const tutorTick = 1500 * time.Millisecond

type Model struct {
	diagram *scenario.Diagram
	cursor  *steps.Cursor
	adapter *stepsync.Adapter

	reduced   bool
	tutor     bool
	pending   *int // navigation request awaiting the driver
	lastBatch []choreo.Timing

	width  int
	height int
}

func New(d *scenario.Diagram, reducedMotion bool) *Model {
	m := &Model{
		diagram: d,
		cursor:  steps.NewCursor(d.Steps, 0),
		reduced: reducedMotion,
		width:   80,
		height:  24,
	}
	m.adapter = stepsync.New(len(d.Steps), 0, func(step int) {
		m.pending = &step
	})
	return m
}

func (m *Model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tutorTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "n", " ":
			m.adapter.Next()
		case "left", "p":
			m.adapter.Prev()
		case "r":
			m.reduced = !m.reduced
		case "t":
			m.toggleTutor()
		}
		m.sync()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.tutor {
			m.driveTutor()
			m.sync()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) toggleTutor() {
	m.tutor = !m.tutor
	if m.tutor {
		m.adapter.SetOverride(m.adapter.Current())
		return
	}
	m.pending = nil
	m.adapter.ClearOverride()
}

// driveTutor stands in for the conversation driver: it grants any
// pending navigation request, otherwise walks the lesson forward.
func (m *Model) driveTutor() {
	if m.pending != nil {
		m.adapter.SetOverride(*m.pending)
		m.pending = nil
		return
	}
	if cur := m.adapter.Current(); cur < m.adapter.Total()-1 {
		m.adapter.SetOverride(cur + 1)
	}
}

// sync moves the cursor to the adapter's authoritative step and
// schedules the reveal batch for anything newly visible.
func (m *Model) sync() {
	prev := m.cursor.Current()
	m.cursor.Set(m.adapter.Current())
	revealed := m.cursor.Revealed(prev)
	if len(revealed) == 0 {
		return
	}
	opts := choreo.DefaultOptions()
	opts.ReducedMotion = m.reduced
	m.lastBatch = choreo.Schedule(revealed, opts)
}

func (m *Model) View() string {
	var sb strings.Builder

	canvasW := m.width - 4
	if canvasW < 20 {
		canvasW = 20
	}
	canvasH := m.height - 10 - len(m.diagram.Steps)
	if canvasH < 6 {
		canvasH = 6
	}
	sb.WriteString(render.View(m.diagram, m.cursor, canvasW, canvasH))

	if len(m.lastBatch) > 0 {
		sb.WriteString(dim.Render("reveal:"))
		for _, t := range m.lastBatch {
			sb.WriteString(dim.Render(fmt.Sprintf(" %s+%dms", t.ID, t.Delay.Milliseconds())))
		}
		sb.WriteByte('\n')
	}

	mode := "manual"
	if m.tutor {
		mode = magenta.Render("tutor")
	}
	motion := ""
	if m.reduced {
		motion = yellow.Render("  reduced motion")
	}
	sb.WriteString(dim.Render("mode: ") + mode + motion + "\n")
	sb.WriteString(dim.Render("←/→ step · t tutor · r motion · q quit") + "\n")
	return sb.String()
}

// Run starts the viewer for one diagram.
func Run(d *scenario.Diagram, reducedMotion bool) error {
	_, err := tea.NewProgram(New(d, reducedMotion), tea.WithAltScreen()).Run()
	return err
}
