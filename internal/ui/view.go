package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/litescript/ls-orrery/internal/orrery"
)

// hudLines is the canvas space reserved for the HUD.
const hudLines = 5

// simEpoch anchors the simulated clock for Julian Date display.
var simEpoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// View renders the canvas and HUD.
func (m Model) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for the orrery view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()
	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// bodyPos tracks a body's canvas cell for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	kind      orrery.Kind
	isFocused bool
}

// buildCanvas renders the system to a rune grid. The star's pole maps to
// the canvas center; planet offsets are display pixels, one per column,
// with rows compressed by half for terminal cell aspect.
func (m Model) buildCanvas() string {
	canvasH := m.canvasHeight()
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx := canvasW / 2
	cy := canvasH / 2

	views := m.sys.Views()
	star := views[0]

	// Orbit rings first so bodies draw over them.
	for _, v := range views[1:] {
		drawCircle(grid, cx, cy, v.OrbitRadius)
	}

	var positions []bodyPos
	for i, v := range views[1:] {
		sx := cx + int(v.X-star.X)
		sy := cy - int((v.Y-star.Y)*0.5)
		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		focused := m.focusIdx == i+1
		glyph := '•'
		if focused {
			glyph = '●'
		}
		grid[sy][sx] = glyph
		positions = append(positions, bodyPos{
			x: sx, y: sy, name: v.Name, kind: orrery.KindPlanet, isFocused: focused,
		})
	}

	// Star last so it is never hidden behind a planet glyph.
	if cx >= 0 && cx < canvasW && cy >= 0 && cy < canvasH {
		grid[cy][cx] = '☉'
		positions = append(positions, bodyPos{
			x: cx, y: cy, name: star.Name, kind: orrery.KindStar, isFocused: m.focusIdx == 0,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)

	return renderGrid(grid)
}

// drawCircle draws a dotted orbit ring of radius r pixels around (cx, cy).
func drawCircle(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}

	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // aspect ratio correction

		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

// renderLabels draws body labels based on the label mode.
func (m Model) renderLabels(grid [][]rune, width, height int, positions []bodyPos) {
	if m.labelMode == LabelNone {
		return
	}

	for _, pos := range positions {
		show := m.labelMode == LabelAll || (m.labelMode == LabelFocused && pos.isFocused)
		if !show {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		text := pos.name
		if pos.isFocused {
			text = "◄ " + pos.name
		}

		for i, r := range text {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func renderGrid(grid [][]rune) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	planetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
			case '·':
				b.WriteString(dimStyle.Render(string(ch)))
			case '☉':
				b.WriteString(sunStyle.Render(string(ch)))
			case '•':
				b.WriteString(planetStyle.Render(string(ch)))
			case '●', '◄':
				b.WriteString(focusStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m Model) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	v := m.FocusedView()

	// Line 1: focused body identity and orbit.
	if v.Kind == orrery.KindStar {
		b.WriteString(headerStyle.Render("☉ " + v.Name))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Teff: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f K", v.TeffK)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Mass: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3g kg", v.MassKg)))
	} else {
		b.WriteString(headerStyle.Render("● " + v.Name))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orbit: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f AU", v.OrbitAU)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Period: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f d", v.PeriodSec/86400)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("θ: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f rad", math.Mod(v.ThetaRad, 2*math.Pi))))
	}
	b.WriteString("\n")

	// Line 2: physical attributes.
	b.WriteString(labelStyle.Render("Mass: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3g kg", v.MassKg)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Radius: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3g m", v.RadiusM)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Density: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f kg/m³", v.DensityKgM)))
	b.WriteString("\n")

	// Line 3: clock and view state.
	jd := julian.TimeToJD(simEpoch) + m.sys.Elapsed()/86400
	clock := fmt.Sprintf("×%.6g", m.timeAccel)
	if m.paused {
		clock += " (paused)"
	}

	b.WriteString(dimStyle.Render("Scale: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.4g px/AU", m.sys.Scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Time: "))
	b.WriteString(valueStyle.Render(clock))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("JD: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f", jd)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels: "))
	b.WriteString(valueStyle.Render(m.labelMode.String()))

	return b.String()
}

// String returns the label mode name.
func (lm LabelMode) String() string {
	switch lm {
	case LabelNone:
		return "off"
	case LabelFocused:
		return "focus"
	case LabelAll:
		return "all"
	default:
		return "unknown"
	}
}
