package blobstore

import (
	"context"
	"time"

	"zorva-be/pkg/cache"
)

// CachedSigner reuses signed URLs for the signing TTL. There is no explicit
// invalidation before expiry: a cached URL may outlive the blob it points to
// by up to the TTL. That stale-read window is an accepted trade-off, not a
// bug; keep it when touching this code.
type CachedSigner struct {
	store Store
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedSigner(store Store, urlCache cache.Cache, ttl time.Duration) *CachedSigner {
	return &CachedSigner{
		store: store,
		cache: urlCache,
		ttl:   ttl,
	}
}

func (s *CachedSigner) SignedURL(ctx context.Context, key string) (string, error) {
	if url, found := s.cache.Get(ctx, key); found {
		return url, nil
	}

	url, err := s.store.SignedURL(ctx, key, s.ttl)
	if err != nil {
		return "", err
	}

	s.cache.Set(ctx, key, url, s.ttl)
	return url, nil
}

func (s *CachedSigner) TTL() time.Duration {
	return s.ttl
}
