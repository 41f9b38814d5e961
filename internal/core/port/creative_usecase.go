package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

var (
	// ErrWorkspaceNotFound is returned when the caller belongs to no workspace.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrCredentialUnavailable is returned when no valid upstream access
	// token exists for the workspace and account.
	ErrCredentialUnavailable = errors.New("no valid upstream credential")
	// ErrInvalidAdID is returned for an empty or malformed ad id.
	ErrInvalidAdID = errors.New("invalid ad id")
	// ErrUpstreamUnavailable is returned by FetchCreative when the upstream
	// call failed and nothing is stored to fall back to.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrRefreshUnavailable is returned when a background refresh cannot be
	// queued.
	ErrRefreshUnavailable = errors.New("refresh queue unavailable")
)

// CreativeUseCase defines the business operations exposed by the creative
// pipeline. It is the primary port into the application domain.
type CreativeUseCase interface {
	// FetchCreative returns one ad's creative. Unless forceRefresh is set, a
	// stored record that is good enough is returned without calling
	// upstream.
	FetchCreative(ctx context.Context, id Identity, adID, accountID string, forceRefresh bool) (*FetchResult, error)

	// FetchCreativesBatch resolves many ads at once. Per-ad failures are
	// reported in the result; only workspace and credential problems fail
	// the call.
	FetchCreativesBatch(ctx context.Context, id Identity, adIDs []string, accountID string) (*BatchResult, error)

	// RefreshCreatives runs the batch pipeline for a workspace without a
	// user identity, as background workers do.
	RefreshCreatives(ctx context.Context, job domain.RefreshJob) (*BatchResult, error)

	// ScheduleRefresh queues a background refresh of adIDs for the caller's
	// workspace and returns the queued job.
	ScheduleRefresh(ctx context.Context, id Identity, adIDs []string, accountID string, force bool) (*domain.RefreshJob, error)
}

// Identity is a caller that has already been authenticated.
type Identity struct {
	UserID uuid.UUID
}

// FetchResult is the outcome of FetchCreative. Cached reports whether the
// creative came from the store rather than a fresh upstream fetch.
type FetchResult struct {
	Creative *domain.CreativeRecord `json:"creative"`
	Cached   bool                   `json:"cached"`
}

// BatchResult is the outcome of a batch call. Every requested ad id appears
// in Records or Errors; a provisional record may appear in both when its
// upgrade failed.
type BatchResult struct {
	Records      map[string]*domain.CreativeRecord `json:"creatives"`
	Errors       map[string]string                 `json:"errors"`
	CachedCount  int                               `json:"cached_count"`
	FetchedCount int                               `json:"fetched_count"`
}
