package port

import (
	"context"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// CreativeRepository persists creative records. It is an outbound port in
// hexagonal architecture. Implementations must enforce uniqueness of
// (workspace, ad) and keep Upsert idempotent so concurrent refreshes of
// overlapping ad sets converge.
type CreativeRepository interface {
	// Get returns the stored record or nil when none exists.
	Get(ctx context.Context, workspaceID uuid.UUID, adID string) (*domain.CreativeRecord, error)
	// GetMany returns stored records keyed by ad id. Missing ids are absent
	// from the map.
	GetMany(ctx context.Context, workspaceID uuid.UUID, adIDs []string) (map[string]*domain.CreativeRecord, error)
	// Upsert inserts or replaces the record keyed by (workspace, ad),
	// incrementing the stored attempt count, and returns the stored row.
	Upsert(ctx context.Context, rec *domain.CreativeRecord) (*domain.CreativeRecord, error)
	// RecordFailure counts a failed fetch attempt without overwriting any
	// usable data already stored, and returns the stored row.
	RecordFailure(ctx context.Context, workspaceID uuid.UUID, adID, accountID, message string) (*domain.CreativeRecord, error)
}
