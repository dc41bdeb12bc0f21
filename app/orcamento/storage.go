package orcamento

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage persists the ordered line list of one cart. It is the server-side
// stand-in for the browser-local storage the storefront used to own.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

type MemoryStorage struct {
	lines []Line
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Line, error) {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *MemoryStorage) Save(lines []Line) error {
	m.lines = make([]Line, len(lines))
	copy(m.lines, lines)
	return nil
}

// FileStorage keeps one JSON document per cart under a data dir.
type FileStorage struct {
	path string
}

func NewFileStorage(dir, cartID string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, cartID+".json")}
}

func (f *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", f.path, err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse cart file %s: %w", f.path, err)
	}
	return lines, nil
}

func (f *FileStorage) Save(lines []Line) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cart dir: %w", err)
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", f.path, err)
	}
	return nil
}
