package grid

// Cell is one board position, either alive or dead.
type Cell bool

const (
	Alive Cell = true
	Dead  Cell = false
)

// Byte characters used by the board text format.
const (
	AliveByte byte = '*'
	DeadByte  byte = ' '
)

// Byte returns the text-format character for the cell.
func (c Cell) Byte() byte {
	if c {
		return AliveByte
	}
	return DeadByte
}

// Grid is a rows x cols board of cells, row-major.
type Grid struct {
	cells [][]Cell
}

// New returns an all-dead grid of the given dimensions.
// rows and cols must both be at least 1.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 {
		return nil, &DimensionError{Name: "rows", Value: rows, Wrapped: ErrParse}
	}
	if cols < 1 {
		return nil, &DimensionError{Name: "cols", Value: cols, Wrapped: ErrParse}
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{cells: cells}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At reports the cell state at row r, column c.
func (g *Grid) At(r, c int) Cell { return g.cells[r][c] }

// Set assigns the cell state at row r, column c.
func (g *Grid) Set(r, c int, cell Cell) { g.cells[r][c] = cell }

// AliveCount returns the number of live cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Alive {
				n++
			}
		}
	}
	return n
}

// Density returns the fraction of live cells, in [0, 1].
func (g *Grid) Density() float64 {
	total := g.Rows() * g.Cols()
	if total == 0 {
		return 0
	}
	return float64(g.AliveCount()) / float64(total)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.cells))
	for i, row := range g.cells {
		cells[i] = make([]Cell, len(row))
		copy(cells[i], row)
	}
	return &Grid{cells: cells}
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r, row := range g.cells {
		for c, cell := range row {
			if cell != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
