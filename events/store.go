package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store loads and saves the full event list.
type Store interface {
	Load() ([]Record, error)
	Save(records []Record) error
}

// FileStore keeps the event list as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored list. A missing file or a stored null yields DefaultRecords.
func (s *FileStore) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRecords(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading event store: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing event store %s: %w", s.path, err)
	}
	if records == nil {
		return DefaultRecords(), nil
	}
	return records, nil
}

// Save replaces the stored list.
func (s *FileStore) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating event store directory: %w", err)
		}
	}

	// Write a sibling file, then rename it over the old list
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing event store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing event store: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
	stored  bool
	saves   int
}

// NewMemoryStore creates an empty store that loads DefaultRecords until saved.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored list.
func (m *MemoryStore) Load() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stored {
		return DefaultRecords(), nil
	}
	return append([]Record(nil), m.records...), nil
}

// Save stores a copy of records.
func (m *MemoryStore) Save(records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]Record{}, records...)
	m.stored = true
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
