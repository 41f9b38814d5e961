package usecase

import (
	"context"

	"adpulse/internal/core/domain"
)

// candidate is one source the resolver may take the main image from.
// Candidates are tried in a fixed order and the first one that yields a URL
// wins.
type candidate interface {
	provenance() domain.Provenance
	resolve(ctx context.Context, r *Resolver, lk *lookups) (domain.ImageResolution, bool)
}

// directImage is a URL taken as-is from the creative or its post.
type directImage struct {
	tag           domain.Provenance
	url           string
	width, height int
	// quality overrides dimension-based grading when set.
	quality domain.Quality
	// rejectLowRes skips URLs shaped like minimal tiles.
	rejectLowRes bool
}

// hashImage is a set of image hashes resolved through the image-by-hash
// lookup; the first hash that resolves wins.
type hashImage struct {
	tag    domain.Provenance
	hashes []string
}

// videoThumbnail takes a video's thumbnail, either from a known URL or by
// fetching the video.
type videoThumbnail struct {
	tag          domain.Provenance
	thumbnailURL string
	videoID      string
}

// thumbnailUpgrade is the last resort: the creative's own small thumbnail
// with its tile marker rewritten to a larger size.
type thumbnailUpgrade struct {
	url string
}

func (c directImage) provenance() domain.Provenance      { return c.tag }
func (c hashImage) provenance() domain.Provenance        { return c.tag }
func (c videoThumbnail) provenance() domain.Provenance   { return c.tag }
func (c thumbnailUpgrade) provenance() domain.Provenance { return domain.ProvenanceThumbnailUpgrade }

func (c directImage) resolve(context.Context, *Resolver, *lookups) (domain.ImageResolution, bool) {
	if c.url == "" || (c.rejectLowRes && IsLowResolutionURL(c.url)) {
		return domain.ImageResolution{}, false
	}
	res := domain.ImageResolution{
		URL:    strPtr(c.url),
		Width:  intPtr(c.width),
		Height: intPtr(c.height),
	}
	res.Quality = c.quality
	if res.Quality == "" {
		res.Quality = domain.ClassifyQuality(res.Width, res.Height)
	}
	return withHD(res), true
}

func (c hashImage) resolve(ctx context.Context, _ *Resolver, lk *lookups) (domain.ImageResolution, bool) {
	for _, hash := range c.hashes {
		if hash == "" {
			continue
		}
		asset := lk.image(ctx, hash)
		if asset == nil {
			continue
		}
		u := asset.PermalinkURL
		if u == "" {
			u = asset.URL
		}
		res := domain.ImageResolution{
			URL:    strPtr(u),
			Width:  intPtr(asset.Width),
			Height: intPtr(asset.Height),
		}
		res.Quality = domain.ClassifyQuality(res.Width, res.Height)
		return withHD(res), true
	}
	return domain.ImageResolution{}, false
}

func (c videoThumbnail) resolve(ctx context.Context, r *Resolver, lk *lookups) (domain.ImageResolution, bool) {
	if c.thumbnailURL != "" {
		res := domain.ImageResolution{URL: strPtr(c.thumbnailURL), Quality: domain.QualityUnknown}
		if IsLowResolutionURL(c.thumbnailURL) {
			res.Quality = domain.QualityLow
		}
		return res, true
	}
	if c.videoID == "" {
		return domain.ImageResolution{}, false
	}
	var video domain.VideoAsset
	if r.prefetched != nil && r.prefetched.VideoID == c.videoID {
		video = *r.prefetched
	} else {
		video = r.videos.Fetch(ctx, lk.cred, c.videoID)
	}
	if !video.Found() {
		return domain.ImageResolution{}, false
	}
	return video.ImageResolution, true
}

func (c thumbnailUpgrade) resolve(context.Context, *Resolver, *lookups) (domain.ImageResolution, bool) {
	if c.url == "" {
		return domain.ImageResolution{}, false
	}
	return domain.ImageResolution{
		URL:     strPtr(UpgradeThumbnailURL(c.url)),
		Quality: domain.QualityLow,
	}, true
}

// withHD mirrors an HD main image into HDURL.
func withHD(res domain.ImageResolution) domain.ImageResolution {
	if res.Quality == domain.QualityHD && res.HDURL == nil {
		res.HDURL = res.URL
	}
	return res
}

// candidatesFor lists the image sources of a creative in resolution order.
// It performs no I/O.
func candidatesFor(cr *domain.AdCreative, post *domain.Post) []candidate {
	var out []candidate

	if post != nil {
		out = append(out, directImage{tag: domain.ProvenancePostFullPicture, url: post.FullPicture, quality: domain.QualityHD})
		if att := post.FirstAttachment(); att != nil && att.Media != nil && att.Media.Image != nil {
			img := att.Media.Image
			out = append(out, directImage{tag: domain.ProvenancePostAttachment, url: img.Src, width: img.Width, height: img.Height})
		}
		out = append(out, directImage{tag: domain.ProvenancePostPicture, url: post.Picture, rejectLowRes: true})
	}

	spec := cr.ObjectStorySpec
	feed := cr.AssetFeedSpec
	if feed != nil {
		hashes := make([]string, 0, len(feed.Images))
		for _, img := range feed.Images {
			hashes = append(hashes, img.Hash)
		}
		out = append(out, hashImage{tag: domain.ProvenanceAssetFeedHash, hashes: hashes})
	}

	out = append(out, hashImage{tag: domain.ProvenanceCreativeHash, hashes: []string{cr.ImageHash}})

	if spec != nil {
		var hashes []string
		var pictures []string
		if spec.LinkData != nil {
			hashes = append(hashes, spec.LinkData.ImageHash)
			pictures = append(pictures, spec.LinkData.Picture)
		}
		if spec.VideoData != nil {
			hashes = append(hashes, spec.VideoData.ImageHash)
			pictures = append(pictures, spec.VideoData.ImageURL)
		}
		if spec.PhotoData != nil {
			hashes = append(hashes, spec.PhotoData.ImageHash)
			pictures = append(pictures, spec.PhotoData.URL)
		}
		out = append(out, hashImage{tag: domain.ProvenanceSpecHash, hashes: hashes})
		for _, p := range pictures {
			out = append(out, directImage{tag: domain.ProvenanceSpecPicture, url: p, rejectLowRes: true})
		}
	}

	// The creative's own image_url is usually an expiring CDN link, so every
	// hash and sub-object picture outranks it.
	out = append(out, directImage{tag: domain.ProvenanceCreativeImageURL, url: cr.ImageURL, rejectLowRes: true})

	if child := firstChild(cr); child != nil {
		out = append(out,
			hashImage{tag: domain.ProvenanceChildHash, hashes: []string{child.ImageHash}},
			directImage{tag: domain.ProvenanceChildPicture, url: child.Picture},
		)
	}

	if feed != nil && len(feed.Videos) > 0 {
		v := feed.Videos[0]
		for _, fv := range feed.Videos {
			if fv.ThumbnailURL != "" {
				v = fv
				break
			}
		}
		out = append(out, videoThumbnail{tag: domain.ProvenanceAssetFeedVideo, thumbnailURL: v.ThumbnailURL, videoID: v.VideoID})
	}

	if id := primaryVideoID(cr); id != "" {
		out = append(out, videoThumbnail{tag: domain.ProvenanceVideoThumbnail, videoID: id})
	}

	return append(out, thumbnailUpgrade{url: cr.ThumbnailURL})
}

// firstChild returns the first carousel or template child item.
func firstChild(cr *domain.AdCreative) *domain.ChildAttachment {
	spec := cr.ObjectStorySpec
	if spec == nil {
		return nil
	}
	if spec.LinkData != nil && len(spec.LinkData.ChildAttachments) > 0 {
		return &spec.LinkData.ChildAttachments[0]
	}
	if spec.TemplateData != nil && len(spec.TemplateData.ChildAttachments) > 0 {
		return &spec.TemplateData.ChildAttachments[0]
	}
	return nil
}

// primaryVideoID returns the video the creative references, if any.
func primaryVideoID(cr *domain.AdCreative) string {
	if cr.VideoID != "" {
		return cr.VideoID
	}
	if spec := cr.ObjectStorySpec; spec != nil {
		if spec.VideoData != nil && spec.VideoData.VideoID != "" {
			return spec.VideoData.VideoID
		}
	}
	if child := firstChild(cr); child != nil {
		return child.VideoID
	}
	return ""
}

// Resolver finds the best still image of a creative.
type Resolver struct {
	videos *VideoFetcher
	// prefetched is a video already fetched for the creative being
	// resolved. It is set per call through forVideo.
	prefetched *domain.VideoAsset
}

func NewResolver(videos *VideoFetcher) *Resolver {
	return &Resolver{videos: videos}
}

// Resolve walks the candidates of cr and returns the first usable image.
// video, when not nil, is reused instead of fetching the same video again.
// An unresolved creative yields an empty result tagged ProvenanceNone.
func (r *Resolver) Resolve(ctx context.Context, lk *lookups, cr *domain.AdCreative, post *domain.Post, video *domain.VideoAsset) domain.ImageResolution {
	run := r.forVideo(video)
	thumb := strPtr(cr.ThumbnailURL)
	for _, c := range candidatesFor(cr, post) {
		res, ok := c.resolve(ctx, run, lk)
		if !ok || res.URL == nil {
			continue
		}
		res.Provenance = c.provenance()
		res.OriginalThumbnail = thumb
		return res
	}
	return emptyResolution()
}

func (r *Resolver) forVideo(video *domain.VideoAsset) *Resolver {
	if video == nil {
		return r
	}
	return &Resolver{videos: r.videos, prefetched: video}
}
