package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. Tests and short-lived commands
// use it where persistence is not wanted.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode stored value %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(key string, value interface{}) error {
	raw, err := marshalValue(value)
	if err != nil {
		return fmt.Errorf("failed to encode value %q: %w", key, err)
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}
