package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFetchAttempts is the retry ceiling after which a record without usable
// data may be marked failed and is no longer re-fetched.
const MaxFetchAttempts = 3

// CreativeType classifies the shape of an advertisement's creative.
type CreativeType string

const (
	CreativeTypeImage    CreativeType = "image"
	CreativeTypeVideo    CreativeType = "video"
	CreativeTypeCarousel CreativeType = "carousel"
	CreativeTypeDynamic  CreativeType = "dynamic"
	CreativeTypeUnknown  CreativeType = "unknown"
)

// FetchStatus tracks how much of a creative was recovered from upstream.
type FetchStatus string

const (
	FetchStatusPending FetchStatus = "pending"
	FetchStatusPartial FetchStatus = "partial"
	FetchStatusSuccess FetchStatus = "success"
	FetchStatusFailed  FetchStatus = "failed"
)

// CreativeRecord is the persisted, quality-graded copy of one ad's creative
// for one workspace. There is at most one record per (WorkspaceID, AdID).
// Nullable columns are pointers.
type CreativeRecord struct {
	ID           int64        `json:"id"`
	WorkspaceID  uuid.UUID    `json:"workspace_id"`
	AdID         string       `json:"ad_id"`
	AccountID    string       `json:"account_id"`
	CreativeID   *string      `json:"creative_id"`
	CreativeType CreativeType `json:"creative_type"`

	ImageURL     *string `json:"image_url"`
	ImageURLHD   *string `json:"image_url_hd"`
	ThumbnailURL *string `json:"thumbnail_url"`
	ImageWidth   *int    `json:"image_width"`
	ImageHeight  *int    `json:"image_height"`
	Quality      Quality `json:"quality"`

	VideoURL             *string  `json:"video_url"`
	VideoDurationSeconds *float64 `json:"video_duration_seconds"`
	VideoFormat          *string  `json:"video_format"`
	VideoID              *string  `json:"video_id"`

	Title        *string `json:"title"`
	Body         *string `json:"body"`
	Description  *string `json:"description"`
	CallToAction *string `json:"call_to_action"`
	LinkURL      *string `json:"link_url"`

	CachedImageURL     *string    `json:"cached_image_url"`
	CachedThumbnailURL *string    `json:"cached_thumbnail_url"`
	CacheExpiresAt     *time.Time `json:"cache_expires_at"`
	CachedSizeBytes    *int64     `json:"cached_size_bytes"`

	IsComplete      bool        `json:"is_complete"`
	FetchStatus     FetchStatus `json:"fetch_status"`
	FetchAttempts   int         `json:"fetch_attempts"`
	LastValidatedAt *time.Time  `json:"last_validated_at"`
	ErrorMessage    *string     `json:"error_message"`

	Extra Extra `json:"extra"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Extra is the opaque audit payload stored alongside a record.
type Extra struct {
	Provenance Provenance      `json:"provenance"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// HasAsset reports whether the record carries an image or a playable video.
func (r *CreativeRecord) HasAsset() bool {
	return present(r.ImageURL) || present(r.VideoURL)
}

// HasText reports whether at least one text field is set.
func (r *CreativeRecord) HasText() bool {
	return present(r.Title) || present(r.Body) || present(r.Description) ||
		present(r.CallToAction) || present(r.LinkURL)
}

// HasCachedCopy reports whether a durable copy of the main image was stored,
// regardless of whether its signed URL is still valid.
func (r *CreativeRecord) HasCachedCopy() bool {
	return present(r.CachedImageURL)
}

// CacheLive reports whether the durable copy exists and its retrieval URL
// has not expired at now.
func (r *CreativeRecord) CacheLive(now time.Time) bool {
	return r.HasCachedCopy() && r.CacheExpiresAt != nil && now.Before(*r.CacheExpiresAt)
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
