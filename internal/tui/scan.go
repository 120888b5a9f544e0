// Package tui is the interactive terminal front end: a scan viewer that
// plots field profiles and lets the user walk a probe cursor along the
// scan line.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/fluxline/fluxline/internal/bfield"
	"github.com/fluxline/fluxline/internal/viz"
)

const (
	plotWidth  = 72
	plotHeight = 14
)

// Scan holds one evaluated probe line ready for display.
type Scan struct {
	Field  string
	Axis   string
	Coords []float64
	Result *bfield.Tensor // shape (n, 3)
}

type model struct {
	scan      Scan
	component int // 0..2, or 3 for magnitude
	cursor    int
	quitting  bool
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(scan Scan) error {
	if len(scan.Result.Shape) != 2 || scan.Result.Shape[1] != 3 {
		return fmt.Errorf("tui: want a (n, 3) scan tensor, got shape %v", scan.Result.Shape)
	}
	m := model{scan: scan, component: 2}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "x":
			m.component = 0
		case "y":
			m.component = 1
		case "z":
			m.component = 2
		case "m", "tab":
			m.component = (m.component + 1) % 4
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.scan.Coords)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.scan.Coords) - 1
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	values := m.values()
	plot := asciigraph.Plot(values,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
	)

	var b strings.Builder
	b.WriteString(viz.Title.Render(fmt.Sprintf("%s%s along %s", m.scan.Field, m.componentName(), m.scan.Axis)))
	b.WriteString("\n")
	b.WriteString(viz.Panel.Render(plot))
	b.WriteString("\n")

	u := m.scan.Coords[m.cursor]
	fx := m.scan.Result.At(m.cursor, 0)
	fy := m.scan.Result.At(m.cursor, 1)
	fz := m.scan.Result.At(m.cursor, 2)
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("%s = %.4f", m.scan.Axis, u)))
	b.WriteString("  ")
	b.WriteString(viz.Value.Render(fmt.Sprintf("%s = (%.6g, %.6g, %.6g)", m.scan.Field, fx, fy, fz)))
	b.WriteString("\n")
	b.WriteString(m.cursorBar())
	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("x/y/z component  tab cycle  ←/→ move probe  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) values() []float64 {
	n := m.scan.Result.Shape[0]
	values := make([]float64, n)
	for i := range values {
		if m.component < 3 {
			values[i] = m.scan.Result.At(i, m.component)
			continue
		}
		fx := m.scan.Result.At(i, 0)
		fy := m.scan.Result.At(i, 1)
		fz := m.scan.Result.At(i, 2)
		values[i] = math.Sqrt(fx*fx + fy*fy + fz*fz)
	}
	return values
}

func (m model) componentName() string {
	if m.component < 3 {
		return [3]string{"x", "y", "z"}[m.component]
	}
	return "|·|"
}

func (m model) cursorBar() string {
	n := len(m.scan.Coords)
	pos := 0
	if n > 1 {
		pos = m.cursor * (plotWidth - 1) / (n - 1)
	}
	bar := make([]rune, plotWidth)
	for i := range bar {
		bar[i] = '─'
	}
	bar[pos] = '▲'
	return string(bar)
}
