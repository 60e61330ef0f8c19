// Package grid models a Game of Life board as a rectangular array of
// alive/dead cells and provides random generation plus the text codec
// used by the simulator.
//
// Boards are generated once and never mutated afterwards:
//
//	rng := rand.New(rand.NewSource(seed))
//	g := grid.Generate(rng, 10, 10, grid.DefaultProbability)
//	err := grid.WriteFile("life.txt", g)
//
// The file format is rows of '*' (alive) and ' ' (dead) characters
// joined by newlines, with no trailing newline and no header. A reader
// infers the dimensions from line count and line length.
package grid
