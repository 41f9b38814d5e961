package domain

import "time"

// Provenance names the candidate source an image was resolved from.
type Provenance string

const (
	ProvenancePostFullPicture  Provenance = "post_full_picture"
	ProvenancePostAttachment   Provenance = "post_attachment"
	ProvenancePostPicture      Provenance = "post_picture"
	ProvenanceAssetFeedHash    Provenance = "asset_feed_hash"
	ProvenanceCreativeHash     Provenance = "creative_hash"
	ProvenanceCreativeImageURL Provenance = "creative_image_url"
	ProvenanceSpecHash         Provenance = "spec_hash"
	ProvenanceSpecPicture      Provenance = "spec_picture"
	ProvenanceChildHash        Provenance = "carousel_child_hash"
	ProvenanceChildPicture     Provenance = "carousel_child_picture"
	ProvenanceAssetFeedVideo   Provenance = "asset_feed_video_thumbnail"
	ProvenanceVideoThumbnail   Provenance = "video_thumbnail"
	ProvenanceThumbnailUpgrade Provenance = "thumbnail_upgrade"
	ProvenanceNone             Provenance = "none"
)

// ImageResolution is the best still image found for a creative.
// OriginalThumbnail always carries the creative's own small thumbnail, even
// when a better main image was found.
type ImageResolution struct {
	URL               *string
	HDURL             *string
	OriginalThumbnail *string
	Width             *int
	Height            *int
	Quality           Quality
	Provenance        Provenance
}

// Found reports whether a main image URL was resolved.
func (r ImageResolution) Found() bool {
	return r.URL != nil
}

// VideoAsset is an ImageResolution for a video's poster plus its playable
// source.
type VideoAsset struct {
	ImageResolution
	VideoID         string
	SourceURL       *string
	DurationSeconds *float64
	Format          *string
}

// TextFields are the copy fields of a creative.
type TextFields struct {
	Title        *string
	Body         *string
	Description  *string
	CallToAction *string
	LinkURL      *string
}

// CachedAssets is the outcome of persisting durable copies. Each URL is
// independently nullable.
type CachedAssets struct {
	ImageURL     *string
	ThumbnailURL *string
	ExpiresAt    *time.Time
	SizeBytes    *int64
	// Width and Height are probed from the downloaded main image.
	Width  *int
	Height *int
}
