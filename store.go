package enroll

import "sync"

// StateStore is the client-local persistent storage holding the submission flag.
// Get returns "" for an absent key.
type StateStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStore is a StateStore that lives only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]string),
	}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}
