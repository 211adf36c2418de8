package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileRepository stores the draft blob as a JSON file on local disk. This is
// the default backend and the closest analog to the browser-local storage the
// draft model was designed around.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) (Store, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Store{}, ErrNotFound
		}
		return Store{}, fmt.Errorf("drafts/file: read %s: %w", r.path, err)
	}
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return Store{}, fmt.Errorf("drafts/file: decode %s: %w", r.path, err)
	}
	return store, nil
}

// Save writes the whole blob through a temp file and rename so a crash mid
// write can never leave a truncated store behind.
func (r *FileRepository) Save(ctx context.Context, store Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("drafts/file: encode: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("drafts/file: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("drafts/file: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("drafts/file: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("drafts/file: close temp: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("drafts/file: rename: %w", err)
	}
	return nil
}
