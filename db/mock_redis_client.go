package db

import (
	"log"
	"path"
	"sort"
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data   map[string]mockEntry
	mu     sync.RWMutex
	now    func() time.Time
	closed bool
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
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
	e := mockEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, exists := m.data[key]
	if !exists || m.expired(e) {
		return "", ErrCacheMiss
	}
	return e.value, nil
}

// Keys matches live keys against a glob pattern, sorted.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k, e := range m.data {
		if m.expired(e) {
			continue
		}
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
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

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClientClosed
	}
	log.Println("[MockRedisClient] Ping successful")
	return nil
}

// Close marks the client closed; later pings fail.
func (m *MockRedisClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MockRedisClient) expired(e mockEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}
