package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// defaultVideoFormat is assumed when the source URL has no recognisable
// extension.
const defaultVideoFormat = "mp4"

var videoFormats = map[string]string{
	".mp4":  "mp4",
	".m4v":  "m4v",
	".mov":  "mov",
	".webm": "webm",
	".avi":  "avi",
	".mkv":  "mkv",
	".3gp":  "3gp",
	".m3u8": "hls",
	".mpd":  "dash",
}

// VideoFetcher retrieves the playable source, duration, format and best
// thumbnail of a video creative.
type VideoFetcher struct {
	platform port.AdPlatform
	logger   *slog.Logger
}

func NewVideoFetcher(platform port.AdPlatform, logger *slog.Logger) *VideoFetcher {
	return &VideoFetcher{platform: platform, logger: logger}
}

// Fetch calls the platform once for videoID. The largest thumbnail becomes
// the main image and an HD-sized one, preferring the platform's preferred
// thumbnail, becomes HDURL. Upstream failures are logged and yield an empty
// asset.
func (f *VideoFetcher) Fetch(ctx context.Context, cred domain.Credential, videoID string) domain.VideoAsset {
	out := domain.VideoAsset{
		VideoID:         videoID,
		ImageResolution: emptyResolution(),
	}
	meta, err := f.platform.GetVideo(ctx, cred, videoID)
	if err != nil {
		f.logger.Warn("video lookup failed", slog.String("video_id", videoID), slog.Any("error", err))
		return out
	}
	if meta == nil {
		return out
	}

	var best, hd *domain.VideoThumbnail
	if meta.Thumbnails != nil {
		for i := range meta.Thumbnails.Data {
			t := &meta.Thumbnails.Data[i]
			if t.URI == "" {
				continue
			}
			if best == nil || t.Width*t.Height > best.Width*best.Height {
				best = t
			}
			if domain.ClassifyQuality(intPtr(t.Width), intPtr(t.Height)) == domain.QualityHD {
				if hd == nil || (t.IsPreferred && !hd.IsPreferred) {
					hd = t
				}
			}
		}
	}

	switch {
	case best != nil:
		out.URL = strPtr(best.URI)
		out.Width = intPtr(best.Width)
		out.Height = intPtr(best.Height)
		out.Quality = domain.ClassifyQuality(out.Width, out.Height)
	case meta.Picture != "":
		out.URL = strPtr(meta.Picture)
		if IsLowResolutionURL(meta.Picture) {
			out.Quality = domain.QualityLow
		}
	}
	if hd != nil {
		out.HDURL = strPtr(hd.URI)
	}
	if out.URL != nil {
		out.Provenance = domain.ProvenanceVideoThumbnail
	}

	if meta.Source != "" {
		out.SourceURL = strPtr(meta.Source)
		format := videoFormat(meta.Source)
		out.Format = &format
	}
	if meta.Length > 0 {
		length := meta.Length
		out.DurationSeconds = &length
	}
	return out
}

// videoFormat derives the container format from the source URL's extension.
func videoFormat(source string) string {
	p := source
	if u, err := url.Parse(source); err == nil {
		p = u.Path
	}
	if format, ok := videoFormats[strings.ToLower(path.Ext(p))]; ok {
		return format
	}
	return defaultVideoFormat
}
