package cache

import (
	"time"

	"github.com/lithoparse/lithoparse"
)

// LayeredCache fronts a persistent disk cache with an in-memory cache.
// Disk hits are promoted to memory so a batch run pays the file read at
// most once per description.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a memory+disk cache pair.
func NewLayeredCache(memoryTTL, cleanupInterval time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, cleanupInterval),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting disk hits to memory.
func (c *LayeredCache) Get(key string) (*lithoparse.SoilDescription, bool) {
	if desc, found := c.memory.Get(key); found {
		return desc, true
	}

	if desc, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, desc, 0) // default TTL
		return desc, true
	}

	return nil, false
}

// Set stores a parsed description in both layers.
func (c *LayeredCache) Set(key string, desc *lithoparse.SoilDescription, ttl time.Duration) error {
	if err := c.memory.Set(key, desc, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, desc, ttl)
}

// Delete removes a description from both layers.
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
