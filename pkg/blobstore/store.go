package blobstore

import (
	"context"
	"time"
)

// KeyPrefix namespaces every blob under the document id issued during
// indexing. Filenames are metadata only; they never appear in keys.
const KeyPrefix = "uploads/"

// Store is the durable blob capability used by the ingestion pipeline.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// DocumentKey derives the well-known blob key for an issued document id.
func DocumentKey(documentId string) string {
	return KeyPrefix + documentId
}
