// Package checkpoint persists the two integers needed to regrow a tree
// (seed and branch count) plus convenience metadata about past runs.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates no checkpoint exists yet; callers treat it as
	// a first run, not a failure.
	ErrNotFound = errors.New("checkpoint: not found")

	// ErrMalformed indicates checkpoint content that is not two integers.
	ErrMalformed = errors.New("checkpoint: malformed content")
)

const checkpointFile = "checkpoint"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes the checkpoint line "<seed> <branches>\n".
func (s *Store) Save(seed int64, branches int) error {
	if err := s.Init(); err != nil {
		return err
	}
	line := fmt.Sprintf("%d %d\n", seed, branches)
	return os.WriteFile(filepath.Join(s.baseDir, checkpointFile), []byte(line), 0644)
}

// Load reads back the stored seed and branch count. A missing file is
// ErrNotFound; anything unparseable is ErrMalformed.
func (s *Store) Load() (seed int64, branches int, err error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, checkpointFile))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, err
	}

	fields := strings.Fields(string(data))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 tokens, got %d", ErrMalformed, len(fields))
	}

	seed, err = strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad seed %q", ErrMalformed, fields[0])
	}
	branches, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad branch count %q", ErrMalformed, fields[1])
	}

	return seed, branches, nil
}

// RunMetadata describes one completed grow, for the list command.
type RunMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Seed       int64     `json:"seed"`
	Life       int       `json:"life"`
	Multiplier int       `json:"multiplier"`
	Branches   int       `json:"branches"`
	Steps      int       `json:"steps"`
}

// SaveRun stores per-run metadata under its own directory.
func (s *Store) SaveRun(meta RunMetadata) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("tree_%d", time.Now().Unix())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns metadata for all stored runs, skipping unreadable entries.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}
