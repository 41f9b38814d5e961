package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// AssetCache stores durable copies of resolved images. It never fails the
// pipeline: assets that cannot be stored come back with nil URLs.
type AssetCache interface {
	Cache(ctx context.Context, res domain.ImageResolution, workspaceID uuid.UUID, adID string) domain.CachedAssets
}

// ObjectStorage is the durable storage collaborator. PresignGet returns a
// read URL valid for at most ttl together with its actual expiry, which may
// be earlier when the backend caps signature lifetimes.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error)
}
