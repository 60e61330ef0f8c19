package grid

import "math/rand"

// DefaultProbability is the alive probability used when none is given.
const DefaultProbability = 0.05

// Generate fills a rows x cols grid with independent Bernoulli draws
// from rng: each cell is alive with probability p. The caller owns the
// rand source, so a fixed seed reproduces the same board.
func Generate(rng *rand.Rand, rows, cols int, p float64) (*Grid, error) {
	if p < 0 || p > 1 {
		return nil, ErrProbability
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < p {
				g.Set(r, c, Alive)
			}
		}
	}
	return g, nil
}
