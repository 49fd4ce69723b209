package blobstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"zorva-be/pkg/cache"
)

// fakeStore signs a structurally different URL on every call, so a repeated
// URL proves a cache hit.
type fakeStore struct {
	signCalls int
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return nil
}
func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error)  { return nil, nil }
func (f *fakeStore) Delete(ctx context.Context, key string) error         { return nil }
func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) { return true, nil }

func (f *fakeStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	f.signCalls++
	return fmt.Sprintf("https://blob.test/%s?sig=%d", key, f.signCalls), nil
}

func TestCachedSignerReturnsIdenticalURLWithinTTL(t *testing.T) {
	store := &fakeStore{}
	signer := NewCachedSigner(store, cache.NewMemoryCache(time.Minute), time.Minute)

	first, err := signer.SignedURL(context.Background(), DocumentKey("doc-1"))
	if err != nil {
		t.Fatalf("first sign failed: %v", err)
	}
	second, err := signer.SignedURL(context.Background(), DocumentKey("doc-1"))
	if err != nil {
		t.Fatalf("second sign failed: %v", err)
	}

	if first != second {
		t.Errorf("urls differ within TTL: %q vs %q", first, second)
	}
	if store.signCalls != 1 {
		t.Errorf("sign calls = %d, want 1 (second lookup must hit the cache)", store.signCalls)
	}
}

func TestCachedSignerSignsFreshURLAfterExpiry(t *testing.T) {
	store := &fakeStore{}
	ttl := 20 * time.Millisecond
	signer := NewCachedSigner(store, cache.NewMemoryCache(ttl), ttl)

	first, _ := signer.SignedURL(context.Background(), DocumentKey("doc-2"))
	time.Sleep(2 * ttl)
	second, _ := signer.SignedURL(context.Background(), DocumentKey("doc-2"))

	if first == second {
		t.Errorf("url not refreshed after TTL: %q", first)
	}
	if store.signCalls != 2 {
		t.Errorf("sign calls = %d, want 2", store.signCalls)
	}
}

func TestDocumentKey(t *testing.T) {
	if got := DocumentKey("abc"); got != "uploads/abc" {
		t.Errorf("DocumentKey = %q, want %q", got, "uploads/abc")
	}
}
