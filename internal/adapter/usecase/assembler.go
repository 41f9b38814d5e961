package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// errNoUsableData is stored on records for which nothing was recovered.
const errNoUsableData = "no creative asset or text found"

// Assembler combines image resolution, video metadata and text extraction
// into one CreativeRecord.
type Assembler struct {
	resolver *Resolver
	videos   *VideoFetcher
	now      func() time.Time
}

func NewAssembler(resolver *Resolver, videos *VideoFetcher, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{resolver: resolver, videos: videos, now: now}
}

// Assemble builds the record for ad. prior is the stored record for the same
// (workspace, ad), if any; the attempt count is advanced by exactly one
// relative to it. The image resolution is returned for the asset cache.
func (a *Assembler) Assemble(ctx context.Context, lk *lookups, workspaceID uuid.UUID, ad *domain.Ad, prior *domain.CreativeRecord) (*domain.CreativeRecord, domain.ImageResolution) {
	cr := ad.Creative
	if cr == nil {
		cr = &domain.AdCreative{}
	}
	accountID := ad.AccountID
	if accountID == "" {
		accountID = lk.accountID
	}

	rec := &domain.CreativeRecord{
		WorkspaceID:  workspaceID,
		AdID:         ad.ID,
		AccountID:    accountID,
		CreativeID:   strPtr(cr.ID),
		CreativeType: classifyCreative(cr),
	}

	var post *domain.Post
	if storyID := cr.StoryID(); storyID != "" {
		post = lk.post(ctx, storyID)
	}

	var video *domain.VideoAsset
	if videoID := primaryVideoID(cr); videoID != "" {
		v := a.videos.Fetch(ctx, lk.cred, videoID)
		video = &v
		rec.VideoID = strPtr(videoID)
		rec.VideoURL = v.SourceURL
		rec.VideoDurationSeconds = v.DurationSeconds
		rec.VideoFormat = v.Format
	}

	img := a.resolver.Resolve(ctx, lk, cr, post, video)
	rec.ImageURL = img.URL
	rec.ImageURLHD = img.HDURL
	rec.ThumbnailURL = img.OriginalThumbnail
	rec.ImageWidth = img.Width
	rec.ImageHeight = img.Height
	rec.Quality = img.Quality

	text := ExtractText(cr, post)
	rec.Title = text.Title
	rec.Body = text.Body
	rec.Description = text.Description
	rec.CallToAction = text.CallToAction
	rec.LinkURL = text.LinkURL

	raw, _ := json.Marshal(cr)
	rec.Extra = domain.Extra{Provenance: img.Provenance, Raw: raw}

	rec.FetchAttempts = 1
	if prior != nil {
		rec.FetchAttempts = prior.FetchAttempts + 1
	}
	now := a.now().UTC()
	rec.LastValidatedAt = &now

	finalize(rec)
	return rec, img
}

// finalize computes completeness and fetch status from what the record
// carries.
func finalize(rec *domain.CreativeRecord) {
	hasAsset, hasText := rec.HasAsset(), rec.HasText()
	rec.IsComplete = hasAsset && hasText &&
		(rec.CreativeType != domain.CreativeTypeVideo || rec.VideoURL != nil)

	rec.ErrorMessage = nil
	switch {
	case hasAsset && hasText:
		rec.FetchStatus = domain.FetchStatusSuccess
	case hasAsset || hasText:
		rec.FetchStatus = domain.FetchStatusPartial
	case rec.FetchAttempts >= domain.MaxFetchAttempts:
		rec.FetchStatus = domain.FetchStatusFailed
	default:
		rec.FetchStatus = domain.FetchStatusPending
	}
	if !hasAsset && !hasText {
		msg := errNoUsableData
		rec.ErrorMessage = &msg
	}
}

// classifyCreative derives the creative type from which sub-objects are set.
func classifyCreative(cr *domain.AdCreative) domain.CreativeType {
	spec := cr.ObjectStorySpec
	switch {
	case cr.VideoID != "" || (spec != nil && spec.VideoData != nil && spec.VideoData.VideoID != ""):
		return domain.CreativeTypeVideo
	case cr.AssetFeedSpec != nil:
		return domain.CreativeTypeDynamic
	case spec != nil && spec.LinkData != nil && len(spec.LinkData.ChildAttachments) >= 2:
		return domain.CreativeTypeCarousel
	case cr.ImageHash != "" || cr.ImageURL != "" || cr.ThumbnailURL != "" ||
		(spec != nil && (spec.LinkData != nil || spec.PhotoData != nil || spec.TemplateData != nil)):
		return domain.CreativeTypeImage
	default:
		return domain.CreativeTypeUnknown
	}
}
