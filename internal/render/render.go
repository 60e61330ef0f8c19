// Package render draws boards for terminal display.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbesoto/life/internal/grid"
)

var (
	// Board frame
	BoardPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	// Live cells
	AliveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	// Title line above the board
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	// Subtle muted text for hints and captions
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// Board renders the grid inside a framed panel with live cells
// highlighted.
func Board(g *grid.Grid) string {
	var b strings.Builder
	star := AliveStyle.Render(string(grid.AliveByte))

	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == grid.Alive {
				b.WriteString(star)
			} else {
				b.WriteByte(grid.DeadByte)
			}
		}
	}

	return BoardPanel.Render(b.String())
}
