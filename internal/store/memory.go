package store

import "sync"

// MemorySurface keeps values in process memory only
type MemorySurface struct {
	values map[string][]byte
	mu     sync.RWMutex
}

var _ Surface = (*MemorySurface)(nil)

// NewMemorySurface creates an empty in-memory surface
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value under key
func (m *MemorySurface) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key
func (m *MemorySurface) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}
