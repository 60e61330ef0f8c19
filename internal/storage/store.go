// Package storage archives generated boards under a data directory,
// one subdirectory per board with the serialized grid and a JSON
// metadata sidecar.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jbesoto/life/internal/grid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type BoardMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	Probability float64   `json:"probability"`
	Seed        int64     `json:"seed"`
	Pattern     string    `json:"pattern,omitempty"`
	AliveCount  int       `json:"alive_count"`
}

// Save archives the board and returns its generated id.
func (s *Store) Save(g *grid.Grid, probability float64, seed int64, pattern string) (string, error) {
	boardID := fmt.Sprintf("board_%d", time.Now().UnixNano())
	boardDir := filepath.Join(s.baseDir, boardID)

	if err := os.MkdirAll(boardDir, 0755); err != nil {
		return "", err
	}

	meta := BoardMetadata{
		ID:          boardID,
		Timestamp:   time.Now(),
		Rows:        g.Rows(),
		Cols:        g.Cols(),
		Probability: probability,
		Seed:        seed,
		Pattern:     pattern,
		AliveCount:  g.AliveCount(),
	}

	metaPath := filepath.Join(boardDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	boardPath := filepath.Join(boardDir, "board.txt")
	if err := grid.WriteFile(boardPath, g); err != nil {
		return "", err
	}

	return boardID, nil
}

// List returns metadata for every readable archived board.
func (s *Store) List() ([]BoardMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BoardMetadata{}, nil
		}
		return nil, err
	}

	boards := make([]BoardMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta BoardMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		boards = append(boards, meta)
	}

	return boards, nil
}

// Load returns an archived board's metadata.
func (s *Store) Load(boardID string) (*BoardMetadata, error) {
	metaPath := filepath.Join(s.baseDir, boardID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta BoardMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadBoard returns an archived board's grid.
func (s *Store) LoadBoard(boardID string) (*grid.Grid, error) {
	return grid.ReadFile(filepath.Join(s.baseDir, boardID, "board.txt"))
}
