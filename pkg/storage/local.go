package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore persists uploaded artifacts on the local filesystem. Services
// record only the stored name; the file must be durably written before the
// referencing row is inserted.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory artifacts are stored under.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes data under a fresh uuid-based name derived from the original
// filename's extension and returns the stored name.
func (s *LocalStore) Save(originalFilename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write artifact: %w", err)
	}
	return name, nil
}

// Remove deletes a stored artifact, for callers that saved one and then
// failed to record its reference. An already-missing file is not an error.
func (s *LocalStore) Remove(name string) error {
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove artifact: %w", err)
	}
	return nil
}
