package grid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNew_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
		ok   bool
	}{
		{"minimal", 1, 1, true},
		{"rectangular", 3, 5, true},
		{"zero rows", 0, 5, false},
		{"zero cols", 3, 0, false},
		{"negative rows", -1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)
			if tt.ok {
				if err != nil {
					t.Fatalf("New(%d, %d) failed: %v", tt.rows, tt.cols, err)
				}
				if g.Rows() != tt.rows || g.Cols() != tt.cols {
					t.Errorf("got %dx%d, want %dx%d", g.Rows(), g.Cols(), tt.rows, tt.cols)
				}
				if g.AliveCount() != 0 {
					t.Error("new grid should be all dead")
				}
			} else {
				if err == nil {
					t.Fatalf("New(%d, %d) should fail", tt.rows, tt.cols)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("expected ErrParse, got %v", err)
				}
			}
		})
	}
}

func TestGrid_SetAt(t *testing.T) {
	g, err := New(3, 5)
	if err != nil {
		t.Fatal(err)
	}

	g.Set(1, 2, Alive)
	if g.At(1, 2) != Alive {
		t.Error("Set did not stick")
	}
	if g.At(1, 3) != Dead {
		t.Error("neighbor cell flipped")
	}
	if g.AliveCount() != 1 {
		t.Errorf("AliveCount = %d, want 1", g.AliveCount())
	}
}

func TestGrid_Clone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := Generate(rng, 8, 8, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}

	c.Set(0, 0, !c.At(0, 0))
	if g.At(0, 0) == c.At(0, 0) {
		t.Error("clone shares storage with original")
	}
}

func TestGrid_Density(t *testing.T) {
	g, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, Alive)

	if got := g.Density(); got != 0.25 {
		t.Errorf("Density = %v, want 0.25", got)
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(42)), 20, 30, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(rand.New(rand.NewSource(42)), 20, 30, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Error("same seed produced different boards")
	}
}

func TestGenerate_ProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := Generate(rng, 2, 2, -0.1); !errors.Is(err, ErrProbability) {
		t.Errorf("p=-0.1: expected ErrProbability, got %v", err)
	}
	if _, err := Generate(rng, 2, 2, 1.5); !errors.Is(err, ErrProbability) {
		t.Errorf("p=1.5: expected ErrProbability, got %v", err)
	}
}

func TestGenerate_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g, err := Generate(rng, 10, 10, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if g.AliveCount() != 0 {
		t.Error("p=0 grid has live cells")
	}

	g, err = Generate(rng, 10, 10, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if g.AliveCount() != 100 {
		t.Error("p=1 grid has dead cells")
	}
}
