package testkit

import (
	"context"
	"sync"
	"time"
)

// MemCache is an in-memory byte cache satisfying store.Cache. TTLs are recorded, not enforced.
type MemCache struct {
	mu   sync.Mutex
	data map[string][]byte
	TTLs map[string]time.Duration
	// Fail, when set, is returned by every call
	Fail error
}

// NewMemCache returns an empty cache
func NewMemCache() *MemCache {
	return &MemCache{data: map[string][]byte{}, TTLs: map[string]time.Duration{}}
}

// Get returns a copy of the stored value
func (m *MemCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, false, m.Fail
	}
	v, ok := m.data[key]
	return append([]byte(nil), v...), ok, nil
}

// Set stores val under key
func (m *MemCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.data[key] = append([]byte(nil), val...)
	m.TTLs[key] = ttl
	return nil
}

// Del removes keys
func (m *MemCache) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return m.Fail
}

// Close is a no-op
func (m *MemCache) Close() error { return nil }

// Len reports the number of stored keys
func (m *MemCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
