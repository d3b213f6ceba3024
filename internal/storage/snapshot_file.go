// Package storage persists serialized bank snapshots to a JSON file. Writes
// are atomic: content goes to a temporary file first and replaces the target
// with a rename, so a crash mid-write never corrupts the previous snapshot.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotFile reads and writes one snapshot file
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a store for the given path
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Path returns the configured snapshot location
func (f *SnapshotFile) Path() string {
	return f.path
}

// Exists reports whether a snapshot has been written before
func (f *SnapshotFile) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Load reads the current snapshot content
func (f *SnapshotFile) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes the snapshot atomically, creating parent directories as needed
func (f *SnapshotFile) Save(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}
