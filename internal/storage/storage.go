// Package storage provides the single save slot.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the save slot used when none is configured.
const DefaultPath = "savegame.json"

// ErrNoSave is returned by Load when the slot is empty.
var ErrNoSave = errors.New("no save present")

// Slot stores one serialized world. Last writer wins.
type Slot interface {
	Save(data []byte) error
	Load() ([]byte, error)
	Erase() error
}

// FileSlot is a Slot backed by a file.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot at path, or DefaultPath if path is empty.
func NewFileSlot(path string) *FileSlot {
	if path == "" {
		path = DefaultPath
	}
	return &FileSlot{path: path}
}

// Path returns the slot's file path.
func (s *FileSlot) Path() string { return s.path }

// Save replaces the slot contents. The file is written next to its final
// location and renamed into place, so a failed write never leaves a
// truncated save behind.
func (s *FileSlot) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load returns the slot contents, or ErrNoSave if the slot is empty.
func (s *FileSlot) Load() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return b, nil
}

// Erase empties the slot. Erasing an empty slot is not an error.
func (s *FileSlot) Erase() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erase save: %w", err)
	}
	return nil
}

// MemorySlot is a Slot held in memory.
type MemorySlot struct {
	data []byte
	ok   bool

	// SaveErr, when set, is returned by Save.
	SaveErr error
	// EraseErr, when set, is returned by Erase.
	EraseErr error
}

// Save stores a copy of data.
func (s *MemorySlot) Save(data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.ok = true
	return nil
}

// Load returns a copy of the stored data, or ErrNoSave.
func (s *MemorySlot) Load() ([]byte, error) {
	if !s.ok {
		return nil, ErrNoSave
	}
	return append([]byte(nil), s.data...), nil
}

// Erase clears the slot.
func (s *MemorySlot) Erase() error {
	if s.EraseErr != nil {
		return s.EraseErr
	}
	s.data, s.ok = nil, false
	return nil
}

var (
	_ Slot = (*FileSlot)(nil)
	_ Slot = (*MemorySlot)(nil)
)
