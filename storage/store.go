package storage

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrCorrupt reports a persisted file that exists but cannot be decoded
var ErrCorrupt = errors.New("storage: corrupt data")

// Store is a small durable key-value store of integers
// Get reports ok=false for an absent key; absence is not an error
type Store interface {
	Get(key string) (int, bool, error)
	Set(key string, value int) error
}

// MemoryStore is a process-local Store
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (s *MemoryStore) Get(key string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
