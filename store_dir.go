package papertrade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirStore persists each key as a JSON file under a directory. It is the
// default adapter: the state stays greppable and editable.
type DirStore struct {
	dir string
}

// OpenDirStore opens (and creates if needed) a directory store.
func OpenDirStore(dir string) (*DirStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("store directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Get(key string) ([]byte, error) {
	content, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return content, nil
}

func (s *DirStore) Put(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

// Reset removes every key file. The directory itself stays.
func (s *DirStore) Reset() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not remove %q: %w", m, err)
		}
	}
	return nil
}

func (s *DirStore) Close() error { return nil }
