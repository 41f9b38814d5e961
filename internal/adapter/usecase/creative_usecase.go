package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/adapter/metrics"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// DefaultPacingDelay separates successive upstream chunks.
const DefaultPacingDelay = time.Second

// maxAdIDLength bounds ad ids before they are embedded in upstream paths.
const maxAdIDLength = 64

// Options tune a CreativeUseCase. Zero values pick defaults.
type Options struct {
	PacingDelay time.Duration
	Logger      *slog.Logger
	Metrics     *metrics.Pipeline
	// Publisher queues background refresh jobs. Without one,
	// ScheduleRefresh fails with port.ErrRefreshUnavailable.
	Publisher port.RefreshPublisher
	// Now overrides the clock in tests.
	Now func() time.Time
}

// CreativeUseCase implements port.CreativeUseCase. It holds no state across
// invocations; memoization lives in a lookups value created per call.
type CreativeUseCase struct {
	repo      port.CreativeRepository
	directory port.WorkspaceDirectory
	platform  port.AdPlatform
	assets    port.AssetCache
	publisher port.RefreshPublisher

	policy    ValidityPolicy
	videos    *VideoFetcher
	assembler *Assembler

	pacing  time.Duration
	logger  *slog.Logger
	metrics *metrics.Pipeline
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewCreativeUseCase wires the pipeline around its collaborators.
func NewCreativeUseCase(repo port.CreativeRepository, directory port.WorkspaceDirectory, platform port.AdPlatform, assets port.AssetCache, opts Options) *CreativeUseCase {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pacing := opts.PacingDelay
	if pacing < 0 {
		pacing = 0
	} else if pacing == 0 {
		pacing = DefaultPacingDelay
	}
	videos := NewVideoFetcher(platform, logger)
	return &CreativeUseCase{
		repo:      repo,
		directory: directory,
		platform:  platform,
		assets:    assets,
		publisher: opts.Publisher,
		policy:    ValidityPolicy{MaxAttempts: domain.MaxFetchAttempts},
		videos:    videos,
		assembler: NewAssembler(NewResolver(videos), videos, now),
		pacing:    pacing,
		logger:    logger,
		metrics:   opts.Metrics,
		now:       now,
		sleep:     sleepContext,
	}
}

// FetchCreative returns one ad's creative, from the store when the validity
// policy allows it. A stored provisional record is returned when the
// upstream attempt fails, so a transient failure never regresses what the
// caller sees.
func (u *CreativeUseCase) FetchCreative(ctx context.Context, id port.Identity, adID, accountID string, forceRefresh bool) (*port.FetchResult, error) {
	adID = strings.TrimSpace(adID)
	if !validAdID(adID) {
		return nil, port.ErrInvalidAdID
	}
	ws, cred, err := u.authorize(ctx, id, accountID)
	if err != nil {
		return nil, err
	}

	prior, err := u.repo.Get(ctx, ws.ID, adID)
	if err != nil {
		u.logger.Warn("load stored creative failed", slog.String("ad_id", adID), slog.Any("error", err))
		prior = nil
	}
	if !forceRefresh {
		if d := u.policy.Evaluate(prior, u.now()); d.Serve && !d.Fetch {
			u.metrics.Served(metrics.SourceStore, 1)
			return &port.FetchResult{Creative: prior, Cached: true}, nil
		}
	}
	provisional := prior != nil && (prior.HasAsset() || prior.HasText())

	ad, err := u.platform.GetAd(ctx, *cred, adID)
	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			u.logger.Warn("upstream rejected ad", slog.String("ad_id", adID), slog.Int("code", upErr.Code), slog.Any("error", err))
			stored, ferr := u.repo.RecordFailure(ctx, ws.ID, adID, accountID, upErr.Error())
			if ferr != nil {
				u.logger.Error("record fetch failure", slog.String("ad_id", adID), slog.Any("error", ferr))
			}
			if stored != nil {
				served := stored.HasAsset() || stored.HasText()
				if served {
					u.metrics.Served(metrics.SourceStore, 1)
				}
				return &port.FetchResult{Creative: stored, Cached: served}, nil
			}
		} else {
			u.logger.Warn("upstream ad fetch failed", slog.String("ad_id", adID), slog.Any("error", err))
		}
		if provisional {
			u.metrics.Served(metrics.SourceStore, 1)
			return &port.FetchResult{Creative: prior, Cached: true}, nil
		}
		return nil, fmt.Errorf("%w: %v", port.ErrUpstreamUnavailable, err)
	}
	if ad.ID == "" {
		ad.ID = adID
	}

	lk := newLookups(u.platform, *cred, accountID, u.logger)
	rec, err := u.process(ctx, lk, ws.ID, ad, prior)
	if err != nil {
		u.logger.Error("persist creative failed", slog.String("ad_id", adID), slog.Any("error", err))
		if provisional {
			u.metrics.Served(metrics.SourceStore, 1)
			return &port.FetchResult{Creative: prior, Cached: true}, nil
		}
		return nil, err
	}
	u.metrics.Served(metrics.SourceUpstream, 1)
	return &port.FetchResult{Creative: rec, Cached: false}, nil
}

// FetchCreativesBatch resolves adIDs for the caller's workspace.
func (u *CreativeUseCase) FetchCreativesBatch(ctx context.Context, id port.Identity, adIDs []string, accountID string) (*port.BatchResult, error) {
	ws, cred, err := u.authorize(ctx, id, accountID)
	if err != nil {
		return nil, err
	}
	return u.runBatch(ctx, ws, *cred, adIDs, accountID, false), nil
}

// RefreshCreatives runs the batch pipeline for job.WorkspaceID. With Force
// set every ad is fetched regardless of what is stored.
func (u *CreativeUseCase) RefreshCreatives(ctx context.Context, job domain.RefreshJob) (*port.BatchResult, error) {
	ws, err := u.directory.WorkspaceByID(ctx, job.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace: %w", err)
	}
	if ws == nil {
		return nil, port.ErrWorkspaceNotFound
	}
	cred, err := u.credential(ctx, ws.ID, job.AccountID)
	if err != nil {
		return nil, err
	}
	return u.runBatch(ctx, ws, *cred, job.AdIDs, job.AccountID, job.Force), nil
}

// runBatch partitions the request into store hits and ads to fetch, fetches
// the latter and merges both into one result.
func (u *CreativeUseCase) runBatch(ctx context.Context, ws *domain.Workspace, cred domain.Credential, adIDs []string, accountID string, force bool) *port.BatchResult {
	result := &port.BatchResult{
		Records: make(map[string]*domain.CreativeRecord),
		Errors:  make(map[string]string),
	}

	ids, invalid := normalizeAdIDs(adIDs)
	for _, raw := range invalid {
		result.Errors[raw] = port.ErrInvalidAdID.Error()
	}
	if len(ids) == 0 {
		return result
	}

	existing, err := u.repo.GetMany(ctx, ws.ID, ids)
	if err != nil {
		u.logger.Warn("load stored creatives failed", slog.Int("ads", len(ids)), slog.Any("error", err))
		existing = nil
	}

	now := u.now()
	toFetch := make([]string, 0, len(ids))
	for _, adID := range ids {
		prior := existing[adID]
		var d Decision
		if force {
			d = Decision{Serve: prior != nil && (prior.HasAsset() || prior.HasText()), Fetch: true, Reason: "forced"}
		} else {
			d = u.policy.Evaluate(prior, now)
		}
		if d.Serve {
			result.Records[adID] = prior
		}
		if d.Fetch {
			toFetch = append(toFetch, adID)
		}
		u.logger.Debug("creative validity", slog.String("ad_id", adID), slog.String("reason", d.Reason),
			slog.Bool("serve", d.Serve), slog.Bool("fetch", d.Fetch))
	}

	fetched, errs := u.fetchBatch(ctx, ws.ID, cred, accountID, toFetch, existing)
	for adID, rec := range fetched {
		result.Records[adID] = rec
	}
	for adID, msg := range errs {
		result.Errors[adID] = msg
	}
	result.FetchedCount = len(fetched)
	result.CachedCount = len(result.Records) - len(fetched)

	u.metrics.Served(metrics.SourceStore, result.CachedCount)
	u.metrics.Served(metrics.SourceUpstream, result.FetchedCount)
	u.logger.Info("creative batch resolved",
		slog.String("workspace_id", ws.ID.String()),
		slog.Int("requested", len(adIDs)),
		slog.Int("cached", result.CachedCount),
		slog.Int("fetched", result.FetchedCount),
		slog.Int("errors", len(result.Errors)),
	)
	return result
}

// process assembles, caches and persists one upstream ad.
func (u *CreativeUseCase) process(ctx context.Context, lk *lookups, workspaceID uuid.UUID, ad *domain.Ad, prior *domain.CreativeRecord) (*domain.CreativeRecord, error) {
	rec, img := u.assembler.Assemble(ctx, lk, workspaceID, ad, prior)

	// An empty response must not wipe data already served to callers.
	if prior != nil && (prior.HasAsset() || prior.HasText()) && !rec.HasAsset() && !rec.HasText() {
		stored, err := u.repo.RecordFailure(ctx, workspaceID, ad.ID, rec.AccountID, errNoUsableData)
		if err != nil {
			return nil, fmt.Errorf("persist creative %s: %w", ad.ID, err)
		}
		return stored, nil
	}

	if img.Found() || img.OriginalThumbnail != nil {
		cached := u.assets.Cache(ctx, img, workspaceID, ad.ID)
		applyCache(rec, cached, prior, u.now())
	}

	stored, err := u.repo.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("persist creative %s: %w", ad.ID, err)
	}
	return stored, nil
}

// applyCache copies durable URLs onto rec. A copy that could not be stored
// this time keeps the prior one while it is still valid; the object path is
// deterministic, so the prior URL still points at the last stored bytes.
func applyCache(rec *domain.CreativeRecord, cached domain.CachedAssets, prior *domain.CreativeRecord, now time.Time) {
	priorLive := prior != nil && prior.CacheLive(now)

	switch {
	case cached.ImageURL != nil:
		rec.CachedImageURL = cached.ImageURL
		rec.CachedSizeBytes = cached.SizeBytes
		rec.CacheExpiresAt = cached.ExpiresAt
	case priorLive:
		rec.CachedImageURL = prior.CachedImageURL
		rec.CachedSizeBytes = prior.CachedSizeBytes
		rec.CacheExpiresAt = prior.CacheExpiresAt
	}

	switch {
	case cached.ThumbnailURL != nil:
		rec.CachedThumbnailURL = cached.ThumbnailURL
		if rec.CacheExpiresAt == nil {
			rec.CacheExpiresAt = cached.ExpiresAt
		}
	case priorLive:
		rec.CachedThumbnailURL = prior.CachedThumbnailURL
	}

	if rec.ImageWidth == nil && rec.ImageHeight == nil && cached.Width != nil && cached.Height != nil {
		rec.ImageWidth = cached.Width
		rec.ImageHeight = cached.Height
		if rec.Quality == domain.QualityUnknown {
			rec.Quality = domain.ClassifyQuality(rec.ImageWidth, rec.ImageHeight)
			if rec.Quality == domain.QualityHD && rec.ImageURLHD == nil {
				rec.ImageURLHD = rec.ImageURL
			}
		}
	}
}

// authorize resolves the caller's workspace and a valid credential for
// accountID.
func (u *CreativeUseCase) authorize(ctx context.Context, id port.Identity, accountID string) (*domain.Workspace, *domain.Credential, error) {
	if id.UserID == uuid.Nil {
		return nil, nil, port.ErrWorkspaceNotFound
	}
	ws, err := u.directory.WorkspaceForUser(ctx, id.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve workspace: %w", err)
	}
	if ws == nil {
		return nil, nil, port.ErrWorkspaceNotFound
	}
	cred, err := u.credential(ctx, ws.ID, accountID)
	if err != nil {
		return nil, nil, err
	}
	return ws, cred, nil
}

func (u *CreativeUseCase) credential(ctx context.Context, workspaceID uuid.UUID, accountID string) (*domain.Credential, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("%w: account id is required", port.ErrCredentialUnavailable)
	}
	cred, err := u.directory.Credential(ctx, workspaceID, accountID)
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}
	if !cred.Valid(u.now()) {
		return nil, port.ErrCredentialUnavailable
	}
	return cred, nil
}

// normalizeAdIDs deduplicates adIDs, keeping first-seen order. Malformed
// ids, padded ones included, are returned separately as given so results stay
// keyed by the caller's literal id.
func normalizeAdIDs(adIDs []string) (ids, invalid []string) {
	ids = make([]string, 0, len(adIDs))
	seen := make(map[string]struct{}, len(adIDs))
	for _, adID := range adIDs {
		if !validAdID(adID) {
			invalid = append(invalid, adID)
			continue
		}
		if _, dup := seen[adID]; dup {
			continue
		}
		seen[adID] = struct{}{}
		ids = append(ids, adID)
	}
	return ids, invalid
}

// validAdID accepts the characters upstream ids are made of so an id can
// be embedded in a request path as-is.
func validAdID(adID string) bool {
	if adID == "" || len(adID) > maxAdIDLength {
		return false
	}
	for _, r := range adID {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
