package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jbesoto/life/internal/grid"
)

// Defaults mirror the simulator's stock board: a 10x10 seed written to
// life.txt in the working directory.
const (
	DefaultRows        = 10
	DefaultCols        = 10
	DefaultOutput      = "life.txt"
	DefaultProbability = grid.DefaultProbability
)

type Config struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Probability float64 `yaml:"probability"`
	// Seed for the random source. Zero means a fresh seed is chosen
	// at generation time.
	Seed    int64  `yaml:"seed"`
	Output  string `yaml:"output"`
	Pattern string `yaml:"pattern"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		Probability: DefaultProbability,
		Output:      DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks dimensions and probability without touching the seed
// or output path.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return &grid.DimensionError{Name: "rows", Value: c.Rows, Wrapped: grid.ErrParse}
	}
	if c.Cols < 1 {
		return &grid.DimensionError{Name: "cols", Value: c.Cols, Wrapped: grid.ErrParse}
	}
	if c.Probability < 0 || c.Probability > 1 {
		return grid.ErrProbability
	}
	return nil
}

// ParseDimension parses a positive decimal integer argument, naming the
// dimension in the error on failure.
func ParseDimension(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 {
		return 0, &grid.DimensionError{Name: name, Input: arg, Wrapped: grid.ErrParse}
	}
	return v, nil
}
