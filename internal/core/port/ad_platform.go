package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// MaxBatchSize is the largest number of requests the ad platform accepts in
// one batched call.
const MaxBatchSize = 50

// AdPlatform is the upstream advertising API. Errors returned by the platform
// itself are *domain.UpstreamError; anything else is a transport failure.
type AdPlatform interface {
	// GetAd fetches a single ad with its creative expanded.
	GetAd(ctx context.Context, cred domain.Credential, adID string) (*domain.Ad, error)
	// BatchGetAds fetches up to MaxBatchSize ads in one call. The result has
	// one entry per requested id, in request order. An error is returned
	// only when the whole call failed.
	BatchGetAds(ctx context.Context, cred domain.Credential, adIDs []string) ([]domain.AdResult, error)
	// ImagesByHash resolves content hashes to full-resolution images.
	ImagesByHash(ctx context.Context, cred domain.Credential, accountID string, hashes []string) (map[string]domain.ImageAsset, error)
	// GetVideo returns thumbnails, poster, playable source and length.
	GetVideo(ctx context.Context, cred domain.Credential, videoID string) (*domain.VideoMeta, error)
	// GetPost returns the social post an ad was created from.
	GetPost(ctx context.Context, cred domain.Credential, postID string) (*domain.Post, error)
}
