package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoredImage identifies an uploaded blob. The catalog persists both values
// opaquely on the product record.
type StoredImage struct {
	URL string
	Key string
}

// ImageStorage defines the interface for the object-storage collaborator that
// holds product images.
type ImageStorage interface {
	// Store uploads an image payload under a key namespaced by the product ID
	// and returns its public URL and storage key.
	Store(ctx context.Context, payload []byte, contentType, filename string, productID uuid.UUID) (*StoredImage, error)

	// Delete removes a blob by key. Best-effort: failures are logged by the
	// implementation and never returned.
	Delete(ctx context.Context, key string)

	// SignedURL returns a time-limited URL for reading a blob.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
