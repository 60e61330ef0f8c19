package grid

import (
	"io"
	"os"
	"strings"
)

// Encode renders the grid in the board text format: one line of
// '*'/' ' characters per row, rows joined by '\n', no trailing
// newline.
func Encode(g *Grid) string {
	var b strings.Builder
	b.Grow(g.Rows()*(g.Cols()+1) - 1)
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			b.WriteByte(g.At(r, c).Byte())
		}
	}
	return b.String()
}

// Write serializes the grid to w.
func Write(w io.Writer, g *Grid) error {
	_, err := io.WriteString(w, Encode(g))
	return err
}

// WriteFile writes the grid to path, overwriting any existing file.
func WriteFile(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, g); err != nil {
		return err
	}
	return f.Close()
}

// Decode parses board text back into a grid. Every line must have the
// same length and contain only '*' and ' ' characters; a single
// trailing newline is tolerated.
func Decode(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, &FormatError{Line: 1, Message: "empty board"}
	}

	lines := strings.Split(text, "\n")
	cols := len(lines[0])
	if cols == 0 {
		return nil, &FormatError{Line: 1, Message: "empty row"}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != cols {
			return nil, &FormatError{Line: r + 1, Message: "ragged row"}
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case AliveByte:
				g.Set(r, c, Alive)
			case DeadByte:
			default:
				return nil, &FormatError{Line: r + 1, Message: "illegal character"}
			}
		}
	}
	return g, nil
}

// ReadFile loads and decodes a board file.
func ReadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}
