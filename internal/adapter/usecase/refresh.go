package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// ScheduleRefresh checks that the caller may refresh accountID and queues a
// background job for the valid ids among adIDs. The job runs through
// RefreshCreatives on a worker.
func (u *CreativeUseCase) ScheduleRefresh(ctx context.Context, id port.Identity, adIDs []string, accountID string, force bool) (*domain.RefreshJob, error) {
	if u.publisher == nil {
		return nil, port.ErrRefreshUnavailable
	}
	ws, _, err := u.authorize(ctx, id, accountID)
	if err != nil {
		return nil, err
	}
	ids, _ := normalizeAdIDs(adIDs)
	if len(ids) == 0 {
		return nil, port.ErrInvalidAdID
	}

	job := domain.RefreshJob{
		JobID:       uuid.New(),
		WorkspaceID: ws.ID,
		AccountID:   accountID,
		AdIDs:       ids,
		Force:       force,
		RequestedAt: u.now().UTC(),
	}
	if err := u.publisher.PublishRefresh(ctx, job); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrRefreshUnavailable, err)
	}
	u.logger.Info("creative refresh queued",
		slog.String("job_id", job.JobID.String()),
		slog.String("workspace_id", ws.ID.String()),
		slog.Int("ads", len(ids)),
		slog.Bool("force", force),
	)
	return &job, nil
}
