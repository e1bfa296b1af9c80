// Package memstore is an in-process object store used by tests and local development.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

type object struct {
	data        []byte
	contentType string
}

// Store keeps objects in a map.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object

	// FailPut, when set, is returned by every PutObject call.
	FailPut error
}

// New creates an empty Store.
func New() *Store {
	return &Store{objects: make(map[string]object)}
}

// PutObject stores a copy of data.
func (s *Store) PutObject(_ context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPut != nil {
		return s.FailPut
	}
	s.objects[key] = object{data: bytes.Clone(data), contentType: contentType}
	return nil
}

// DeleteObject removes key; missing keys are ignored.
func (s *Store) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// GetObject returns a reader over a copy of the stored bytes.
func (s *Store) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(o.data))), nil
}

// Has reports whether key is stored.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}

// ContentType returns the stored content type of key.
func (s *Store) ContentType(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[key].contentType
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
