package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store implementation, used by tests and as a
// reference for the per-key atomicity the contract requires.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, collection, key string, v any) error {
	s.mu.RLock()
	b, ok := s.m[collection][key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, v)
}

func (s *MemoryStore) Create(ctx context.Context, collection, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[collection][key]; ok {
		return ErrAlreadyExists
	}
	if s.m[collection] == nil {
		s.m[collection] = make(map[string][]byte)
	}
	s.m[collection][key] = b
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[collection][key]; !ok {
		return ErrNotFound
	}
	s.m[collection][key] = b
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[collection][key]; !ok {
		return ErrNotFound
	}
	delete(s.m[collection], key)
	return nil
}
