// Package assetcache downloads resolved creative images and keeps durable,
// time-limited copies of them in object storage.
package assetcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"adpulse/internal/adapter/metrics"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const (
	// MaxAssetBytes is the size ceiling for a single cached asset.
	MaxAssetBytes = 10 << 20
	// URLValidity is how long a stored copy's signed URL stays valid.
	URLValidity = 30 * 24 * time.Hour
)

// Asset kinds, also used as metric labels.
const (
	KindImage     = "image"
	KindThumbnail = "thumbnail"
)

// Cache outcomes.
const (
	outcomeStored         = "stored"
	outcomeOversized      = "oversized"
	outcomeDownloadFailed = "download_failed"
	outcomeNotImage       = "not_image"
	outcomeStorageFailed  = "storage_failed"
)

var (
	errOversized = errors.New("asset exceeds size ceiling")
	errNotImage  = errors.New("asset is not an image")
)

// Store implements port.AssetCache on top of port.ObjectStorage.
type Store struct {
	storage  port.ObjectStorage
	client   *http.Client
	maxBytes int64
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Pipeline
	now      func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Store) { s.client = c }
}

// WithMaxBytes overrides the size ceiling.
func WithMaxBytes(n int64) Option {
	return func(s *Store) { s.maxBytes = n }
}

// WithMetrics records cache outcomes on m.
func WithMetrics(m *metrics.Pipeline) Option {
	return func(s *Store) { s.metrics = m }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a Store writing to storage.
func NewStore(storage port.ObjectStorage, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: MaxAssetBytes,
		ttl:      URLValidity,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache stores the best variant of res and its original thumbnail. The two
// copies succeed or fail independently; a failure only leaves that URL nil.
func (s *Store) Cache(ctx context.Context, res domain.ImageResolution, workspaceID uuid.UUID, adID string) domain.CachedAssets {
	var out domain.CachedAssets
	prefix := fmt.Sprintf("creatives/%s/%s/", workspaceID, adID)

	if src := mainSource(res); src != "" {
		if obj, ok := s.store(ctx, KindImage, src, prefix+KindImage); ok {
			out.ImageURL = &obj.url
			out.ExpiresAt = earliest(out.ExpiresAt, obj.expires)
			size := int64(len(obj.body))
			out.SizeBytes = &size
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(obj.body)); err == nil && cfg.Width > 0 && cfg.Height > 0 {
				out.Width, out.Height = &cfg.Width, &cfg.Height
			}
		}
	}
	if res.OriginalThumbnail != nil && *res.OriginalThumbnail != "" {
		if obj, ok := s.store(ctx, KindThumbnail, *res.OriginalThumbnail, prefix+KindThumbnail); ok {
			out.ThumbnailURL = &obj.url
			out.ExpiresAt = earliest(out.ExpiresAt, obj.expires)
		}
	}
	return out
}

type storedObject struct {
	url     string
	body    []byte
	expires time.Time
}

func earliest(cur *time.Time, t time.Time) *time.Time {
	t = t.UTC()
	if cur == nil || t.Before(*cur) {
		return &t
	}
	return cur
}

func (s *Store) store(ctx context.Context, kind, src, key string) (storedObject, bool) {
	log := s.logger.With(slog.String("kind", kind), slog.String("key", key))

	body, contentType, err := s.download(ctx, src)
	if err != nil {
		outcome := outcomeDownloadFailed
		switch {
		case errors.Is(err, errOversized):
			outcome = outcomeOversized
		case errors.Is(err, errNotImage):
			outcome = outcomeNotImage
		}
		s.metrics.AssetCached(kind, outcome, 0)
		log.Warn("asset not cached", slog.String("outcome", outcome), slog.Any("error", err))
		return storedObject{}, false
	}

	if err := s.storage.Put(ctx, key, body, contentType); err != nil {
		s.metrics.AssetCached(kind, outcomeStorageFailed, 0)
		log.Error("asset upload failed", slog.Any("error", err))
		return storedObject{}, false
	}
	signed, expires, err := s.storage.PresignGet(ctx, key, s.ttl)
	if err != nil {
		s.metrics.AssetCached(kind, outcomeStorageFailed, 0)
		log.Error("asset presign failed", slog.Any("error", err))
		return storedObject{}, false
	}
	s.metrics.AssetCached(kind, outcomeStored, len(body))
	log.Debug("asset cached", slog.Int("bytes", len(body)), slog.String("content_type", contentType))
	if expires.IsZero() {
		expires = s.now().Add(s.ttl)
	}
	return storedObject{url: signed, body: body, expires: expires}, true
}

// download fetches src, enforcing the size ceiling on both the declared
// length and the bytes actually read.
func (s *Store) download(ctx context.Context, src string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("download: status %d", resp.StatusCode)
	}
	if resp.ContentLength > s.maxBytes {
		return nil, "", fmt.Errorf("%w: declared %d bytes", errOversized, resp.ContentLength)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, "", fmt.Errorf("%w: more than %d bytes", errOversized, s.maxBytes)
	}

	contentType := mediaType(resp.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mediaType(http.DetectContentType(body))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%w: %s", errNotImage, contentType)
	}
	return body, contentType, nil
}

// mainSource prefers the high-definition variant.
func mainSource(res domain.ImageResolution) string {
	if res.HDURL != nil && *res.HDURL != "" {
		return *res.HDURL
	}
	if res.URL != nil {
		return *res.URL
	}
	return ""
}

func mediaType(header string) string {
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

