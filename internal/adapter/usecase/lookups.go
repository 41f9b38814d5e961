package usecase

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// lookups memoizes image-by-hash and post lookups for one pipeline
// invocation so that ads sharing an image or a post cost a single upstream
// call. It is dropped when the invocation returns and is never a cache of
// record. Failed lookups are memoized as misses for the same reason.
type lookups struct {
	platform  port.AdPlatform
	cred      domain.Credential
	accountID string
	logger    *slog.Logger

	group  singleflight.Group
	mu     sync.Mutex
	images map[string]*domain.ImageAsset
	posts  map[string]*domain.Post
}

func newLookups(platform port.AdPlatform, cred domain.Credential, accountID string, logger *slog.Logger) *lookups {
	return &lookups{
		platform:  platform,
		cred:      cred,
		accountID: accountID,
		logger:    logger,
		images:    make(map[string]*domain.ImageAsset),
		posts:     make(map[string]*domain.Post),
	}
}

// image resolves a content hash to a usable image or nil.
func (l *lookups) image(ctx context.Context, hash string) *domain.ImageAsset {
	l.mu.Lock()
	asset, ok := l.images[hash]
	l.mu.Unlock()
	if ok {
		return asset
	}

	v, _, _ := l.group.Do("image:"+hash, func() (any, error) {
		l.mu.Lock()
		if asset, ok := l.images[hash]; ok {
			l.mu.Unlock()
			return asset, nil
		}
		l.mu.Unlock()

		var found *domain.ImageAsset
		assets, err := l.platform.ImagesByHash(ctx, l.cred, l.accountID, []string{hash})
		if err != nil {
			l.logger.Warn("image hash lookup failed", slog.String("hash", hash), slog.Any("error", err))
		} else if a, ok := assets[hash]; ok && (a.PermalinkURL != "" || a.URL != "") {
			found = &a
		}

		l.mu.Lock()
		l.images[hash] = found
		l.mu.Unlock()
		return found, nil
	})
	return v.(*domain.ImageAsset)
}

// post returns the originating social post or nil.
func (l *lookups) post(ctx context.Context, postID string) *domain.Post {
	l.mu.Lock()
	p, ok := l.posts[postID]
	l.mu.Unlock()
	if ok {
		return p
	}

	v, _, _ := l.group.Do("post:"+postID, func() (any, error) {
		l.mu.Lock()
		if p, ok := l.posts[postID]; ok {
			l.mu.Unlock()
			return p, nil
		}
		l.mu.Unlock()

		found, err := l.platform.GetPost(ctx, l.cred, postID)
		if err != nil {
			l.logger.Warn("post lookup failed", slog.String("post_id", postID), slog.Any("error", err))
			found = nil
		}

		l.mu.Lock()
		l.posts[postID] = found
		l.mu.Unlock()
		return found, nil
	})
	return v.(*domain.Post)
}
