package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// RefreshPublisher enqueues background refresh jobs.
type RefreshPublisher interface {
	PublishRefresh(ctx context.Context, job domain.RefreshJob) error
}
