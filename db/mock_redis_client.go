package db

import (
	"context"
	"path"
	"sort"
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time
}

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]mockEntry
	mu      sync.RWMutex
	context context.Context
	now     func() time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]mockEntry),
		context: ctx,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for expiry.
func (m *MockRedisClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, exists := m.data[key]
	if !exists || m.expired(entry) {
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

// Keys matches glob patterns the way Redis KEYS does for the common cases.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k, entry := range m.data {
		if m.expired(entry) {
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	return nil
}

func (m *MockRedisClient) expired(entry mockEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}
