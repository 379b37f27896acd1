package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const _TTL = time.Minute * 10

type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCache() (*Cache, error) {
	return NewCacheWithTTL(_TTL)
}

func NewCacheWithTTL(ttl time.Duration) (*Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,     // number of keys to track frequency of (100K).
		MaxCost:     1 << 10, // maximum number of cached provider responses.
		BufferItems: 64,      // number of keys per Get buffer.
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Set stores value with the default TTL. ristretto applies writes asynchronously,
// so a Get right after Set may still miss.
func (c *Cache) Set(key string, value interface{}) {
	c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Clear() {
	c.cache.Close()
}
