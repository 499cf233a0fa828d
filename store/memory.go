package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is a map-backed document store for tests and credential-free
// local runs. Semantics match the remote backends: whole-document overwrite,
// ErrNotFound for absent paths, direct-children listing.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage

	// FailWrites and FailReads force transport errors in tests.
	FailWrites bool
	FailReads  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]json.RawMessage{}}
}

func (s *MemoryStore) Get(_ context.Context, path string, dest interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return fmt.Errorf("memory get %s: transport failure", path)
	}

	doc, ok := s.docs[path]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(doc, dest)
}

func (s *MemoryStore) Set(_ context.Context, path string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory encode %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return fmt.Errorf("memory set %s: transport failure", path)
	}

	s.docs[path] = doc
	return nil
}

func (s *MemoryStore) GetChildren(_ context.Context, path string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return nil, fmt.Errorf("memory children %s: transport failure", path)
	}

	prefix := strings.TrimSuffix(path, "/") + "/"
	children := map[string]json.RawMessage{}
	for docPath, doc := range s.docs {
		if !strings.HasPrefix(docPath, prefix) {
			continue
		}
		key := strings.TrimPrefix(docPath, prefix)
		if strings.Contains(key, "/") {
			continue
		}
		children[key] = doc
	}
	return children, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
