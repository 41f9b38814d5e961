package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(t *testing.T) (*Resolver, *lookups, *mocks.MockAdPlatform) {
	platform := mocks.NewMockAdPlatform(t)
	logger := discardLogger()
	lk := newLookups(platform, testCred, testAccount, logger)
	return NewResolver(NewVideoFetcher(platform, logger)), lk, platform
}

func TestResolvePrefersPostFullPicture(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	cr := &domain.AdCreative{
		ImageURL:     "https://cdn.example/creative.jpg",
		ThumbnailURL: "https://cdn.example/p64x64/thumb.jpg",
	}
	post := &domain.Post{FullPicture: "https://cdn.example/full.jpg", Picture: "https://cdn.example/p130x130/pic.jpg"}

	res := r.Resolve(context.Background(), lk, cr, post, nil)
	require.True(t, res.Found())
	assert.Equal(t, "https://cdn.example/full.jpg", *res.URL)
	assert.Equal(t, "https://cdn.example/full.jpg", *res.HDURL)
	assert.Equal(t, domain.QualityHD, res.Quality)
	assert.Equal(t, domain.ProvenancePostFullPicture, res.Provenance)
	require.NotNil(t, res.OriginalThumbnail)
	assert.Equal(t, cr.ThumbnailURL, *res.OriginalThumbnail)
}

func TestResolvePostAttachmentDimensions(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	post := &domain.Post{Attachments: &domain.PostAttachments{Data: []domain.PostAttachment{{
		Media: &domain.PostMedia{Image: &domain.PostImage{Src: "https://cdn.example/att.jpg", Width: 720, Height: 540}},
	}}}}

	res := r.Resolve(context.Background(), lk, &domain.AdCreative{}, post, nil)
	assert.Equal(t, domain.ProvenancePostAttachment, res.Provenance)
	assert.Equal(t, domain.QualitySD, res.Quality)
	assert.Nil(t, res.HDURL)
	assert.Equal(t, 720, *res.Width)
}

func TestResolveHashLookupIsMemoized(t *testing.T) {
	r, lk, platform := newTestResolver(t)
	platform.EXPECT().
		ImagesByHash(mock.Anything, testCred, testAccount, []string{"h1"}).
		Return(map[string]domain.ImageAsset{
			"h1": {Hash: "h1", URL: "https://cdn.example/h1_small.jpg", PermalinkURL: "https://cdn.example/h1.jpg", Width: 1920, Height: 1080},
		}, nil).
		Once()

	cr := &domain.AdCreative{ImageHash: "h1", ImageURL: "https://cdn.example/p64x64/low.jpg"}
	for range 2 {
		res := r.Resolve(context.Background(), lk, cr, nil, nil)
		assert.Equal(t, domain.ProvenanceCreativeHash, res.Provenance)
		assert.Equal(t, "https://cdn.example/h1.jpg", *res.URL)
		assert.Equal(t, domain.QualityHD, res.Quality)
	}
}

func TestResolveFailedHashLookupFallsThrough(t *testing.T) {
	r, lk, platform := newTestResolver(t)
	platform.EXPECT().
		ImagesByHash(mock.Anything, testCred, testAccount, []string{"h1"}).
		Return(nil, errors.New("connection reset")).
		Once()

	cr := &domain.AdCreative{ImageHash: "h1", ImageURL: "https://cdn.example/creative.jpg"}
	for range 2 {
		res := r.Resolve(context.Background(), lk, cr, nil, nil)
		assert.Equal(t, domain.ProvenanceCreativeImageURL, res.Provenance)
		assert.Equal(t, domain.QualityUnknown, res.Quality)
	}
}

func TestResolveSpecHashBeatsCreativeImageURL(t *testing.T) {
	r, lk, platform := newTestResolver(t)
	platform.EXPECT().
		ImagesByHash(mock.Anything, testCred, testAccount, []string{"h1"}).
		Return(map[string]domain.ImageAsset{
			"h1": {Hash: "h1", PermalinkURL: "https://cdn.example/h1.jpg", Width: 1200, Height: 1200},
		}, nil)

	cr := &domain.AdCreative{
		ImageURL:        "https://cdn.example/creative.jpg",
		ObjectStorySpec: &domain.ObjectStorySpec{LinkData: &domain.LinkData{ImageHash: "h1"}},
	}
	res := r.Resolve(context.Background(), lk, cr, nil, nil)
	assert.Equal(t, domain.ProvenanceSpecHash, res.Provenance)
	assert.Equal(t, "https://cdn.example/h1.jpg", *res.URL)
	assert.Equal(t, domain.QualityHD, res.Quality)
}

func TestResolveCandidateOrder(t *testing.T) {
	full := func() *domain.AdCreative {
		return &domain.AdCreative{
			ImageHash: "h_creative",
			ImageURL:  "https://cdn.example/creative.jpg",
			ObjectStorySpec: &domain.ObjectStorySpec{LinkData: &domain.LinkData{
				ImageHash: "h_link",
				Picture:   "https://cdn.example/link.jpg",
				ChildAttachments: []domain.ChildAttachment{
					{ImageHash: "h_child", Picture: "https://cdn.example/card.jpg"},
					{Picture: "https://cdn.example/card2.jpg"},
				},
			}},
		}
	}

	tests := []struct {
		name    string
		known   []string
		mutate  func(cr *domain.AdCreative)
		wantTag domain.Provenance
		wantURL string
	}{
		{
			name:    "creative hash first",
			known:   []string{"h_creative", "h_link", "h_child"},
			wantTag: domain.ProvenanceCreativeHash,
			wantURL: "https://cdn.example/h_creative.jpg",
		},
		{
			name:    "sub-object hash next",
			known:   []string{"h_link", "h_child"},
			wantTag: domain.ProvenanceSpecHash,
			wantURL: "https://cdn.example/h_link.jpg",
		},
		{
			name:    "sub-object picture when no hash resolves",
			known:   []string{"h_child"},
			wantTag: domain.ProvenanceSpecPicture,
			wantURL: "https://cdn.example/link.jpg",
		},
		{
			name:    "creative image url after sub-object pictures",
			known:   []string{"h_child"},
			mutate:  func(cr *domain.AdCreative) { cr.ObjectStorySpec.LinkData.Picture = "" },
			wantTag: domain.ProvenanceCreativeImageURL,
			wantURL: "https://cdn.example/creative.jpg",
		},
		{
			name:  "child hash",
			known: []string{"h_child"},
			mutate: func(cr *domain.AdCreative) {
				cr.ObjectStorySpec.LinkData.Picture = ""
				cr.ImageURL = ""
			},
			wantTag: domain.ProvenanceChildHash,
			wantURL: "https://cdn.example/h_child.jpg",
		},
		{
			name: "child picture",
			mutate: func(cr *domain.AdCreative) {
				cr.ObjectStorySpec.LinkData.Picture = ""
				cr.ImageURL = ""
			},
			wantTag: domain.ProvenanceChildPicture,
			wantURL: "https://cdn.example/card.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, lk, platform := newTestResolver(t)
			platform.EXPECT().
				ImagesByHash(mock.Anything, testCred, testAccount, mock.Anything).
				RunAndReturn(func(_ context.Context, _ domain.Credential, _ string, hashes []string) (map[string]domain.ImageAsset, error) {
					out := make(map[string]domain.ImageAsset)
					for _, h := range hashes {
						for _, k := range tt.known {
							if h == k {
								out[h] = domain.ImageAsset{Hash: h, PermalinkURL: "https://cdn.example/" + h + ".jpg", Width: 1080, Height: 1080}
							}
						}
					}
					return out, nil
				}).
				Maybe()

			cr := full()
			if tt.mutate != nil {
				tt.mutate(cr)
			}
			res := r.Resolve(context.Background(), lk, cr, nil, nil)
			require.True(t, res.Found())
			assert.Equal(t, tt.wantTag, res.Provenance)
			assert.Equal(t, tt.wantURL, *res.URL)
		})
	}
}

func TestResolveSkipsLowResolutionURLs(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	cr := &domain.AdCreative{
		ImageURL:     "https://cdn.example/p64x64/creative.jpg",
		ThumbnailURL: "https://cdn.example/t/p64x64/thumb.jpg",
	}

	res := r.Resolve(context.Background(), lk, cr, nil, nil)
	assert.Equal(t, domain.ProvenanceThumbnailUpgrade, res.Provenance)
	assert.Equal(t, "https://cdn.example/t/p720x720/thumb.jpg", *res.URL)
	assert.Equal(t, domain.QualityLow, res.Quality)
	assert.Equal(t, "https://cdn.example/t/p64x64/thumb.jpg", *res.OriginalThumbnail)
}

func TestResolveCarouselChild(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	cr := &domain.AdCreative{ObjectStorySpec: &domain.ObjectStorySpec{
		LinkData: &domain.LinkData{ChildAttachments: []domain.ChildAttachment{
			{Picture: "https://cdn.example/card1.jpg"},
			{Picture: "https://cdn.example/card2.jpg"},
		}},
	}}

	res := r.Resolve(context.Background(), lk, cr, nil, nil)
	assert.Equal(t, domain.ProvenanceChildPicture, res.Provenance)
	assert.Equal(t, "https://cdn.example/card1.jpg", *res.URL)
}

func TestResolveReusesPrefetchedVideo(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	video := &domain.VideoAsset{
		VideoID: "v1",
		ImageResolution: domain.ImageResolution{
			URL:     strPtr("https://cdn.example/poster.jpg"),
			Quality: domain.QualityHD,
		},
	}

	res := r.Resolve(context.Background(), lk, &domain.AdCreative{VideoID: "v1"}, nil, video)
	assert.Equal(t, domain.ProvenanceVideoThumbnail, res.Provenance)
	assert.Equal(t, "https://cdn.example/poster.jpg", *res.URL)
}

func TestResolveAssetFeedVideoThumbnail(t *testing.T) {
	r, lk, _ := newTestResolver(t)
	cr := &domain.AdCreative{AssetFeedSpec: &domain.AssetFeedSpec{Videos: []domain.AssetFeedVideo{
		{VideoID: "v1"},
		{VideoID: "v2", ThumbnailURL: "https://cdn.example/s130x130/feed.jpg"},
	}}}

	res := r.Resolve(context.Background(), lk, cr, nil, nil)
	assert.Equal(t, domain.ProvenanceAssetFeedVideo, res.Provenance)
	assert.Equal(t, domain.QualityLow, res.Quality)
}

func TestResolveNothingFound(t *testing.T) {
	r, lk, _ := newTestResolver(t)

	res := r.Resolve(context.Background(), lk, &domain.AdCreative{}, nil, nil)
	assert.False(t, res.Found())
	assert.Equal(t, domain.ProvenanceNone, res.Provenance)
	assert.Equal(t, domain.QualityUnknown, res.Quality)
}
