package grid

import (
	"errors"
	"fmt"
)

// Domain errors for board generation and decoding.
var (
	// ErrUsage indicates a wrong number of command arguments.
	ErrUsage = errors.New("grid: wrong number of arguments")

	// ErrParse indicates a dimension that is not a positive integer.
	ErrParse = errors.New("grid: dimension is not a positive integer")

	// ErrProbability indicates an alive probability outside [0, 1].
	ErrProbability = errors.New("grid: probability outside [0, 1]")

	// ErrFormat indicates a board file that is ragged, empty, or
	// contains characters outside the '*'/' ' alphabet.
	ErrFormat = errors.New("grid: malformed board file")
)

// DimensionError wraps a dimension failure with the offending input.
type DimensionError struct {
	Name    string
	Input   string
	Value   int
	Wrapped error
}

func (e *DimensionError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Input, e.Wrapped)
	}
	return fmt.Sprintf("invalid %s %d: %v", e.Name, e.Value, e.Wrapped)
}

func (e *DimensionError) Unwrap() error {
	return e.Wrapped
}

// FormatError wraps a decode failure with its position in the input.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
