// Package ui implements the interactive terminal view of a star system.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orrery"
)

// LabelMode controls which body labels are drawn.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// TickMsg advances the simulation clock.
type TickMsg time.Time

// Model is the bubbletea model for the orrery view.
type Model struct {
	sys    *orrery.System
	logger *logging.Logger

	width  int
	height int

	// Simulation pacing
	tickRate  time.Duration
	timeAccel float64 // simulated seconds per wall second
	paused    bool
	lastTick  time.Time

	// View state
	focusIdx   int // index into Views(); 0 = star
	labelMode  LabelMode
	autoFitted bool // initial fit-to-terminal applied
}

// New creates the model for a system. tickRate drives the frame clock and
// timeAccel sets how many simulated seconds pass per wall second.
func New(sys *orrery.System, tickRate time.Duration, timeAccel float64, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		sys:       sys,
		logger:    logger,
		tickRate:  tickRate,
		timeAccel: timeAccel,
		labelMode: LabelFocused,
	}
}

// Init schedules the first simulation tick.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles input, resize, and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.autoFitted {
			m.fitToTerminal()
			m.autoFitted = true
		}
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() && !m.paused {
			dt := now.Sub(m.lastTick).Seconds() * m.timeAccel
			m.sys.Advance(dt)
		}
		m.lastTick = now
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	// Zoom: rescale the whole system by ten percent per step.
	case "+", "=":
		if err := m.sys.RescalePercent(0.10); err != nil {
			m.logger.Warn("rescale rejected: %v", err)
		}
	case "-":
		if err := m.sys.RescalePercent(-0.10); err != nil {
			m.logger.Warn("rescale rejected: %v", err)
		}
	case "0":
		m.fitToTerminal()

	// Focus cycling through star and planets.
	case "k", "]", "tab":
		m.focusIdx++
		if m.focusIdx > len(m.sys.Planets()) {
			m.focusIdx = 0
		}
	case "j", "[":
		m.focusIdx--
		if m.focusIdx < 0 {
			m.focusIdx = len(m.sys.Planets())
		}

	// Time control.
	case " ":
		m.paused = !m.paused
	case ".", ">":
		m.timeAccel *= 2
	case ",", "<":
		if m.timeAccel > 1 {
			m.timeAccel /= 2
		}

	// Label mode toggle.
	case "l":
		m.labelMode = (m.labelMode + 1) % 3
	}

	return m, nil
}

// fitToTerminal rescales so the outermost orbit fills most of the canvas.
func (m *Model) fitToTerminal() {
	if m.width < 4 || m.height < 4 {
		return
	}

	var maxAU float64
	for _, v := range m.sys.Views() {
		if v.OrbitAU > maxAU {
			maxAU = v.OrbitAU
		}
	}
	if maxAU <= 0 {
		return
	}

	// One display pixel maps to one canvas column; rows count double
	// because terminal cells are about twice as tall as wide.
	maxRadiusPx := 0.9 * minf(float64(m.width)/2, float64(m.canvasHeight()))
	if err := m.sys.Rescale(maxRadiusPx / maxAU); err != nil {
		m.logger.Warn("fit rescale rejected: %v", err)
	}
}

func (m Model) canvasHeight() int {
	h := m.height - hudLines
	if h < 5 {
		h = 5
	}
	return h
}

// Paused reports whether the simulation clock is stopped.
func (m Model) Paused() bool { return m.paused }

// TimeAccel returns the current time acceleration factor.
func (m Model) TimeAccel() float64 { return m.timeAccel }

// FocusedView returns the currently focused body's view.
func (m Model) FocusedView() orrery.BodyView {
	views := m.sys.Views()
	if m.focusIdx < 0 || m.focusIdx >= len(views) {
		return views[0]
	}
	return views[m.focusIdx]
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
