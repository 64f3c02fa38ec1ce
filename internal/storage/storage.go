package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/focusflow/focusflow/internal/model"
)

// The three collections are persisted in independent slots so a corrupt file
// only costs its own collection.
const (
	categoriesFile = "categories.json"
	logsFile       = "logs.json"
	goalsFile      = "goals.json"
)

// DefaultDir returns the root data directory (~/.focusflow).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".focusflow"), nil
}

// Store persists the category registry, time-log store and goal registry as
// JSON files under a base directory. It only mirrors the in-memory
// collections; the tracker owns the source of truth.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// LoadCategories reads the category slot. A missing file yields the default
// seed categories; a corrupt file is backed up and also falls back to the
// defaults with a warning, never an error.
func (s *Store) LoadCategories() ([]model.Category, error) {
	var cats []model.Category
	ok, err := s.loadSlot(categoriesFile, &cats)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.DefaultCategories(), nil
	}
	return cats, nil
}

// LoadLogs reads the time-log slot. Missing or corrupt files yield an empty
// collection.
func (s *Store) LoadLogs() ([]model.TimeLog, error) {
	var logs []model.TimeLog
	ok, err := s.loadSlot(logsFile, &logs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.TimeLog{}, nil
	}
	return logs, nil
}

// LoadGoals reads the goal slot. Missing or corrupt files yield an empty
// collection.
func (s *Store) LoadGoals() ([]model.Goal, error) {
	var goals []model.Goal
	ok, err := s.loadSlot(goalsFile, &goals)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Goal{}, nil
	}
	return goals, nil
}

func (s *Store) SaveCategories(cats []model.Category) error {
	return s.saveSlot(categoriesFile, cats)
}

func (s *Store) SaveLogs(logs []model.TimeLog) error {
	return s.saveSlot(logsFile, logs)
}

func (s *Store) SaveGoals(goals []model.Goal) error {
	return s.saveSlot(goalsFile, goals)
}

// loadSlot reads and decodes one slot file into v. It reports whether usable
// data was decoded. Deserialization failure is recovered locally: the bad
// file is backed up and the slot is treated as absent.
func (s *Store) loadSlot(name string, v any) (bool, error) {
	path := filepath.Join(s.baseDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		fmt.Fprintf(os.Stderr, "Warning: corrupt JSON in %s (backed up to %s), using defaults\n", path, backupPath)
		return false, nil
	}
	return true, nil
}

// saveSlot atomically writes one slot file: write to a temp file, then rename.
func (s *Store) saveSlot(name string, v any) error {
	if err := os.MkdirAll(s.baseDir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	path := filepath.Join(s.baseDir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
