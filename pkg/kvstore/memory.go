package kvstore

import "sync"

// Memory is an in-process Store backed by a map. It is the default backend
// for development and the canonical test double. An optional capacity limit
// (total bytes of keys and values) makes it reject writes the same way a
// browser-style origin store would.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	capacity int
}

// NewMemory returns an unbounded in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// NewMemoryWithCapacity returns a store that rejects writes once the total
// size of stored keys and values would exceed capacityBytes.
func NewMemoryWithCapacity(capacityBytes int) *Memory {
	return &Memory{data: make(map[string]string), capacity: capacityBytes}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capacity > 0 {
		size := len(key) + len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			size += len(k) + len(v)
		}
		if size > m.capacity {
			return ErrQuotaExceeded
		}
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
