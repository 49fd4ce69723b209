package cache

import (
	"context"
	"time"
)

// Cache is a string key/value cache with per-entry TTL. Implementations must
// provide atomic get/set; callers rely on that instead of locking themselves.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}
