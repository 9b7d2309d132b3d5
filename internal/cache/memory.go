package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lithoparse/lithoparse"
)

// MemoryCache implements in-memory caching of parsed descriptions.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a parsed description from the cache.
func (c *MemoryCache) Get(key string) (*lithoparse.SoilDescription, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*lithoparse.SoilDescription), true
	}
	return nil, false
}

// Set stores a parsed description with the given TTL.
func (c *MemoryCache) Set(key string, desc *lithoparse.SoilDescription, ttl time.Duration) error {
	c.cache.Set(key, desc, ttl)
	return nil
}

// Delete removes a cached description.
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all cached descriptions.
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
