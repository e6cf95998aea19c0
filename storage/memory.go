package storage

import (
	"context"
	"sync"
)

type memoryKey struct {
	userID uint
	key    string
}

// MemoryStore is a process-local KVStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[memoryKey]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[memoryKey]string)}
}

func (s *MemoryStore) Get(_ context.Context, userID uint, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[memoryKey{userID, key}]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, userID uint, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[memoryKey{userID, key}] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID uint, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, memoryKey{userID, k})
	}
	return nil
}
