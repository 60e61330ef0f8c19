// Package stats computes density summaries over a board.
package stats

import "github.com/jbesoto/life/internal/grid"

// Summary describes the live-cell distribution of one board.
type Summary struct {
	Rows       int
	Cols       int
	AliveCount int
	Density    float64
	// Bounding box of live cells; zero-valued with Empty=true when
	// the board has none.
	Empty          bool
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Summarize scans the board once and fills a Summary.
func Summarize(g *grid.Grid) Summary {
	s := Summary{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Empty: true,
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) != grid.Alive {
				continue
			}
			if s.Empty {
				s.Empty = false
				s.MinRow, s.MaxRow = r, r
				s.MinCol, s.MaxCol = c, c
			} else {
				if r < s.MinRow {
					s.MinRow = r
				}
				if r > s.MaxRow {
					s.MaxRow = r
				}
				if c < s.MinCol {
					s.MinCol = c
				}
				if c > s.MaxCol {
					s.MaxCol = c
				}
			}
			s.AliveCount++
		}
	}

	s.Density = g.Density()
	return s
}

// RowDensities returns the live fraction of each row, top to bottom.
func RowDensities(g *grid.Grid) []float64 {
	out := make([]float64, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		n := 0
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == grid.Alive {
				n++
			}
		}
		out[r] = float64(n) / float64(g.Cols())
	}
	return out
}

// ColDensities returns the live fraction of each column, left to right.
func ColDensities(g *grid.Grid) []float64 {
	out := make([]float64, g.Cols())
	for c := 0; c < g.Cols(); c++ {
		n := 0
		for r := 0; r < g.Rows(); r++ {
			if g.At(r, c) == grid.Alive {
				n++
			}
		}
		out[c] = float64(n) / float64(g.Rows())
	}
	return out
}
