// Package pattern provides classic Game of Life seed patterns that can
// be stamped onto a generated board.
package pattern

import (
	"fmt"

	"github.com/jbesoto/life/internal/grid"
)

// Pattern is a named arrangement of live cells, row-major, '*' alive
// and ' ' dead like the board format itself.
type Pattern struct {
	Name string
	Rows []string
}

func (p Pattern) Height() int { return len(p.Rows) }

func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

var Patterns = map[string]Pattern{
	"block": {
		Name: "block",
		Rows: []string{
			"**",
			"**",
		},
	},
	"blinker": {
		Name: "blinker",
		Rows: []string{
			"***",
		},
	},
	"toad": {
		Name: "toad",
		Rows: []string{
			" ***",
			"*** ",
		},
	},
	"glider": {
		Name: "glider",
		Rows: []string{
			" * ",
			"  *",
			"***",
		},
	},
	"beacon": {
		Name: "beacon",
		Rows: []string{
			"**  ",
			"**  ",
			"  **",
			"  **",
		},
	},
	"rpentomino": {
		Name: "rpentomino",
		Rows: []string{
			" **",
			"** ",
			" * ",
		},
	},
}

// Get looks up a pattern by name.
func Get(name string) (Pattern, bool) {
	p, ok := Patterns[name]
	return p, ok
}

// List returns the available pattern names.
func List() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	return names
}

// Stamp sets the pattern's live cells onto g with its top-left corner
// at (row, col). Dead pattern cells leave the board untouched, so a
// random fill underneath survives. The pattern must fit on the board.
func Stamp(g *grid.Grid, p Pattern, row, col int) error {
	if row < 0 || col < 0 || row+p.Height() > g.Rows() || col+p.Width() > g.Cols() {
		return fmt.Errorf("pattern %s (%dx%d) does not fit at (%d,%d) on a %dx%d board",
			p.Name, p.Height(), p.Width(), row, col, g.Rows(), g.Cols())
	}
	for r, line := range p.Rows {
		for c := 0; c < len(line); c++ {
			if line[c] == grid.AliveByte {
				g.Set(row+r, col+c, grid.Alive)
			}
		}
	}
	return nil
}

// StampCentered stamps the pattern in the middle of the board.
func StampCentered(g *grid.Grid, p Pattern) error {
	row := (g.Rows() - p.Height()) / 2
	col := (g.Cols() - p.Width()) / 2
	if row < 0 || col < 0 {
		return fmt.Errorf("pattern %s (%dx%d) does not fit on a %dx%d board",
			p.Name, p.Height(), p.Width(), g.Rows(), g.Cols())
	}
	return Stamp(g, p, row, col)
}
