// Package filestore persists a collection of records as a single JSON array
// file. Every write replaces the whole file.
package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klowq/admin-dashboard/internal/models"
)

// Collection is the file-backed storage of one entity kind.
//
// The embedded mutex is not taken by LoadAll/SaveAll themselves; stores hold
// it around a whole read-modify-write sequence.
type Collection[T any] struct {
	sync.Mutex
	dir  string
	name string
}

// New returns a collection stored at dir/name. Nothing is touched on disk.
func New[T any](dir, name string) *Collection[T] {
	return &Collection[T]{dir: dir, name: name}
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return filepath.Join(c.dir, c.name)
}

// EnsureDir creates the containing directory if it does not exist yet.
func (c *Collection[T]) EnsureDir() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", models.ErrStorage, c.dir, err)
	}
	return nil
}

// LoadAll reads the full collection. A missing file is an empty collection.
// A file that is not a JSON array yields an error wrapping models.ErrCorrupt.
func (c *Collection[T]) LoadAll() ([]T, error) {
	path := c.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrStorage, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %v", models.ErrStorage, models.ErrCorrupt, path, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SaveAll replaces the collection with records. The data is written to a
// temp file in the same directory and renamed over the target.
func (c *Collection[T]) SaveAll(records []T) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", models.ErrStorage, c.name, err)
	}
	return writeAtomic(c.Path(), b)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", models.ErrStorage, err)
	}
	tmpName := tmp.Name()
	fail := func(op string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s %s: %w", models.ErrStorage, op, path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", models.ErrStorage, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %w", models.ErrStorage, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %w", models.ErrStorage, path, err)
	}
	return nil
}
