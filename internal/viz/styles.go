package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Panel frames the plot area.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	// Title heads the interactive view.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	// Subtle renders secondary labels.
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Value highlights numeric readouts.
	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	// KeyHint renders the key binding bar.
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
