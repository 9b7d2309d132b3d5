package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lithoparse/lithoparse"
)

// DiskCache persists parsed descriptions as JSON files so repeated runs
// over the same borehole logs skip re-parsing.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a new disk cache rooted at dir.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
	}
}

type diskEntry struct {
	Description json.RawMessage `json:"description"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// Get retrieves a parsed description from the disk cache. Missing,
// unreadable or expired entries are a miss, never an error.
func (c *DiskCache) Get(key string) (*lithoparse.SoilDescription, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	desc, err := lithoparse.FromJSON(entry.Description)
	if err != nil {
		return nil, false
	}
	return desc, true
}

// Set stores a parsed description on disk with the given TTL. A zero TTL
// uses the cache default.
func (c *DiskCache) Set(key string, desc *lithoparse.SoilDescription, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	raw, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("marshal description: %w", err)
	}

	data, err := json.Marshal(diskEntry{
		Description: raw,
		ExpiresAt:   time.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes a cached description from disk.
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes all cached files.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path generates the file path for a cache key.
func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}
