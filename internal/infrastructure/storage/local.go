// Package storage keeps uploaded document files on the local filesystem.
// Storage names are uuid-prefixed and never reused, so writes need no
// locking and a name can be unlinked without racing a second writer.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var errBadName = errors.New("storage: invalid file name")

// Store is a flat directory of uploaded files.
type Store struct {
	dir string
}

// New creates the uploads directory when missing and returns the store.
func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Save writes the reader's contents under name. A partial file left by a
// failed copy is removed before returning.
func (s *Store) Save(name string, r io.Reader) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("storage: close file: %w", err)
	}
	return nil
}

// Remove unlinks the file. A name that is already gone is not an error.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

// Path resolves a storage name to an absolute path inside the uploads
// directory, refusing names that would escape it.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", errBadName
	}
	return filepath.Join(s.dir, name), nil
}
