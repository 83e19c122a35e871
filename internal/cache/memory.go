package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process layer, backed by go-cache with TTL eviction.
// It holds recently fetched roster PDFs for the lifetime of the process.
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a cached document
func (m *Memory) Get(key string) ([]byte, bool) {
	if v, found := m.store.Get(key); found {
		return v.([]byte), true
	}
	return nil, false
}

// Set stores a document with the given TTL (0 uses the default)
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.store.Set(key, value, ttl)
	return nil
}

// Delete removes a cached document
func (m *Memory) Delete(key string) error {
	m.store.Delete(key)
	return nil
}

// Clear drops every cached document
func (m *Memory) Clear() error {
	m.store.Flush()
	return nil
}
