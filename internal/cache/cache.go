package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/lithoparse/lithoparse"
)

// Cache defines the interface for caching parsed descriptions.
type Cache interface {
	Get(key string) (*lithoparse.SoilDescription, bool)
	Set(key string, desc *lithoparse.SoilDescription, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a raw description. The text is lowercased
// and whitespace-collapsed first so trivially reworded inputs share an
// entry.
func Key(description string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(description)), " ")
	hash := sha256.Sum256([]byte(normalized))
	return "lithoparse:v1:" + hex.EncodeToString(hash[:])
}
