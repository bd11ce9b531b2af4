package blob

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	writes  int
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

func (s *MemStore) Write(_ context.Context, key string, data []byte) error {
	cleaned, err := cleanKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[cleaned] = append([]byte(nil), data...)
	s.writes++

	return nil
}

func (s *MemStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	return data, ok
}

func (s *MemStore) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}
