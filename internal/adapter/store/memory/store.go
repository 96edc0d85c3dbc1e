package memory

import (
	"context"
	"sync"

	"pocketpet/internal/app/ports"
)

// Store keeps state documents in process memory. Values are copied on the
// way in and out so callers never share a buffer with the store.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	opens  int
}

var _ ports.StateStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Open(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens++
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Seed stores value under key without going through Set.
func (s *Store) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
}

func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

// Opens reports how many times Open was called.
func (s *Store) Opens() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opens
}
