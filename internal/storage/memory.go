package storage

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests.
type MemStore struct {
	mu     sync.RWMutex
	data   map[string]string
	setErr error
	getErr error
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

// FailWrites makes subsequent Set/Remove calls return err (nil to clear).
func (s *MemStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// FailReads makes subsequent Get calls return err (nil to clear).
func (s *MemStore) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

func (s *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *MemStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	delete(s.data, key)
	return nil
}
