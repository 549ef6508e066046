package kv

import (
	"sync"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Memory is an in-memory KV backend. It is the default backend and the
// one tests run against. A non-zero capacity turns it into a quota-limited
// store: writes that would push the summed key+value size past the
// capacity fail with ErrQuotaExceeded, the way a full browser store
// rejects setItem.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	capacity int64 // 0 means unlimited
	used     int64
}

// NewMemory creates an unlimited in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// NewMemoryWithCapacity creates an in-memory backend that rejects writes
// once the summed key+value byte size would exceed capacity.
func NewMemoryWithCapacity(capacity int64) *Memory {
	return &Memory{data: make(map[string]string), capacity: capacity}
}

// Get returns the stored text for key and whether the key exists.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores text under key. Fails with ErrQuotaExceeded when the write
// would exceed the configured capacity.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delta := entrySize(key, value)
	if old, ok := m.data[key]; ok {
		delta -= entrySize(key, old)
	}
	if m.capacity > 0 && m.used+delta > m.capacity {
		return types.ErrQuotaExceeded
	}
	m.data[key] = value
	m.used += delta
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.data[key]; ok {
		m.used -= entrySize(key, old)
		delete(m.data, key)
	}
	return nil
}

// Clear wipes the entire namespace.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	m.used = 0
	return nil
}

// Keys enumerates every key currently present.
func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close is a no-op for the memory backend.
func (m *Memory) Close() error {
	return nil
}

// entrySize is the byte cost of one entry for quota accounting.
func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
