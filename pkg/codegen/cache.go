package codegen

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheSize bounds the cache to a reasonable number of
	// schema files for a watch session.
	DefaultCacheSize = 256
	// DefaultCacheTTL keeps entries long enough to cover repeated
	// regeneration bursts without pinning stale output forever.
	DefaultCacheTTL = 5 * time.Minute
)

// CacheConfig holds cache settings.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached generations.
	MaxEntries int
	// TTL is how long an entry stays valid.
	TTL time.Duration
}

// DefaultCacheConfig returns the default cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		MaxEntries: DefaultCacheSize,
		TTL:        DefaultCacheTTL,
	}
}

// Cache memoizes rendered output keyed by source content, so watch
// sessions skip regeneration for unchanged files.
type Cache struct {
	cache  *lru.LRU[string, []GeneratedFile]
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// NewCache creates a cache with the given configuration. A nil config
// uses defaults.
func NewCache(config *CacheConfig) *Cache {
	if config == nil {
		config = DefaultCacheConfig()
	}
	maxEntries := config.MaxEntries
	if maxEntries < 1 {
		maxEntries = DefaultCacheSize
	}
	return &Cache{
		cache: lru.NewLRU[string, []GeneratedFile](maxEntries, nil, config.TTL),
	}
}

// Get returns the cached files for key, if present.
func (c *Cache) Get(key string) ([]GeneratedFile, bool) {
	files, ok := c.cache.Get(key)
	if ok {
		c.hits.Add(1)
		return files, true
	}
	c.misses.Add(1)
	return nil, false
}

// Add stores files under key.
func (c *Cache) Add(key string, files []GeneratedFile) {
	c.cache.Add(key, files)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.cache.Purge()
}

// Stats returns current counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.cache.Len(),
	}
}

// HashSource returns the cache key for a source text.
func HashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
