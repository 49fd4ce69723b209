package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	// Purge expired items every 10 minutes
	return &MemoryCache{
		cache: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	if x, found := c.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (c *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}
