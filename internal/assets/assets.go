// Package assets handles model asset reading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrNotFound is returned when an asset file does not exist.
var ErrNotFound = errors.New("asset not found")

// Manager reads asset files from disk, caching their contents.
// A nil cache disables caching.
type Manager struct {
	cache *Cache
}

// NewManager creates a new asset manager.
func NewManager(cached bool) *Manager {
	m := &Manager{}
	if cached {
		m.cache = NewCache()
	}
	return m
}

// Load reads a file, serving repeated reads from the cache.
func (m *Manager) Load(path string) ([]byte, error) {
	if m.cache != nil {
		if data, ok := m.cache.Get(path); ok {
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if m.cache != nil {
		m.cache.Set(path, data)
	}
	return data, nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	if m.cache == nil {
		return 0, 0
	}
	return m.cache.Stats()
}

// Close drops cached data.
func (m *Manager) Close() {
	if m.cache != nil {
		m.cache.Clear()
	}
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Counters are written, so a full lock is needed.
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}
