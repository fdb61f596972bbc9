package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one JSON file per record under <baseDir>/<collection>/<key>.json.
type FileStore struct {
	mu      sync.Mutex
	baseDir string
}

// NewFileStore creates the base directory if needed and returns a FileStore.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create base dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(collection, key string) string {
	return filepath.Join(s.baseDir, collection, key+".json")
}

// Read decodes the record file into v. Returns ErrNotFound if the file is absent.
func (s *FileStore) Read(ctx context.Context, collection, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(collection, key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("store: read %s/%s: %w", collection, key, err)
	}
	return json.Unmarshal(b, v)
}

// Create writes a new record file. Returns ErrAlreadyExists if the key is taken.
func (s *FileStore) Create(ctx context.Context, collection, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Join(s.baseDir, collection), 0o755); err != nil {
		return fmt.Errorf("store: create collection dir: %w", err)
	}
	f, err := os.OpenFile(s.path(collection, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("store: create %s/%s: %w", collection, key, err)
	}
	defer f.Close()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("store: write %s/%s: %w", collection, key, err)
	}
	return nil
}

// Update replaces an existing record file. Returns ErrNotFound if the key is absent.
func (s *FileStore) Update(ctx context.Context, collection, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(collection, key)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("store: stat %s/%s: %w", collection, key, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("store: update %s/%s: %w", collection, key, err)
	}
	return nil
}

// Delete removes the record file. Returns ErrNotFound if the key is absent.
func (s *FileStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(collection, key)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("store: delete %s/%s: %w", collection, key, err)
	}
	return nil
}
