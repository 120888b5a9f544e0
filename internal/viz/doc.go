// Package viz renders field evaluation results in the terminal: line
// profiles of field components along a probe axis via asciigraph, and
// the shared lipgloss styles used by the interactive view.
package viz
