package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSurface keeps each key in its own JSON file inside a directory
type FileSurface struct {
	dir string
	mu  sync.Mutex
}

var _ Surface = (*FileSurface)(nil)

// NewFileSurface creates a surface rooted at dir. The directory is created
// on the first write.
func NewFileSurface(dir string) *FileSurface {
	return &FileSurface{dir: dir}
}

// path returns the full path to the file for key
func (f *FileSurface) path(key string) string {
	// Keys are fixed identifiers, but never let one escape the directory
	return filepath.Join(f.dir, filepath.Base(key)+".json")
}

// Get reads the file for key
func (f *FileSurface) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set writes the file for key through a temporary file and a rename
func (f *FileSurface) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Ensure data directory exists
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}

	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
