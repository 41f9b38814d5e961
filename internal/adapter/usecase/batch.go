package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Item error kinds, used as metric labels.
const (
	itemErrorTransport = "transport"
	itemErrorUpstream  = "upstream"
	itemErrorPersist   = "persist"
	itemErrorCancelled = "cancelled"
)

// fetchBatch fetches adIDs in chunks of port.MaxBatchSize. Chunks run one
// after another separated by the pacing delay; the ads of one chunk are
// processed concurrently. Every id ends up in exactly one of the returned
// maps.
func (u *CreativeUseCase) fetchBatch(ctx context.Context, workspaceID uuid.UUID, cred domain.Credential, accountID string, adIDs []string, existing map[string]*domain.CreativeRecord) (map[string]*domain.CreativeRecord, map[string]string) {
	records := make(map[string]*domain.CreativeRecord, len(adIDs))
	errs := make(map[string]string)
	if len(adIDs) == 0 {
		return records, errs
	}

	lk := newLookups(u.platform, cred, accountID, u.logger)
	chunks := chunkIDs(adIDs, port.MaxBatchSize)
	var mu sync.Mutex

	for i, chunk := range chunks {
		if i > 0 {
			if err := u.sleep(ctx, u.pacing); err != nil {
				for _, rest := range chunks[i:] {
					for _, adID := range rest {
						errs[adID] = fmt.Sprintf("not attempted: %v", err)
						u.metrics.ItemError(itemErrorCancelled)
					}
				}
				break
			}
		}

		start := time.Now()
		results, err := u.platform.BatchGetAds(ctx, cred, chunk)
		if err != nil {
			u.logger.Warn("upstream batch request failed",
				slog.Int("chunk", i), slog.Int("ads", len(chunk)), slog.Any("error", err))
			for _, adID := range chunk {
				errs[adID] = fmt.Sprintf("batch request failed: %v", err)
				u.metrics.ItemError(itemErrorTransport)
			}
			continue
		}

		byID := make(map[string]domain.AdResult, len(results))
		for _, r := range results {
			byID[r.AdID] = r
		}

		g := new(errgroup.Group)
		g.SetLimit(len(chunk))
		for _, adID := range chunk {
			item, ok := byID[adID]
			g.Go(func() error {
				rec, msg := u.processItem(ctx, lk, workspaceID, accountID, adID, item, ok, existing[adID])
				mu.Lock()
				defer mu.Unlock()
				if rec != nil {
					records[adID] = rec
				}
				if msg != "" {
					errs[adID] = msg
				}
				return nil
			})
		}
		_ = g.Wait()
		u.metrics.ObserveChunk(time.Since(start))
	}
	return records, errs
}

// processItem turns one batch item into a stored record or an error string.
// Item-level upstream errors are counted as failed attempts on the record.
func (u *CreativeUseCase) processItem(ctx context.Context, lk *lookups, workspaceID uuid.UUID, accountID, adID string, item domain.AdResult, ok bool, prior *domain.CreativeRecord) (*domain.CreativeRecord, string) {
	if !ok {
		u.metrics.ItemError(itemErrorUpstream)
		return nil, "missing from upstream batch response"
	}
	if item.Err != nil || item.Status != http.StatusOK || item.Ad == nil {
		msg := itemErrorMessage(item)
		u.logger.Warn("upstream item error", slog.String("ad_id", adID), slog.Int("status", item.Status), slog.String("error", msg))
		u.metrics.ItemError(itemErrorUpstream)
		if _, err := u.repo.RecordFailure(ctx, workspaceID, adID, accountID, msg); err != nil {
			u.logger.Error("record fetch failure", slog.String("ad_id", adID), slog.Any("error", err))
		}
		return nil, msg
	}

	ad := item.Ad
	if ad.ID == "" {
		ad.ID = adID
	}
	rec, err := u.process(ctx, lk, workspaceID, ad, prior)
	if err != nil {
		u.logger.Error("persist creative failed", slog.String("ad_id", adID), slog.Any("error", err))
		u.metrics.ItemError(itemErrorPersist)
		return nil, err.Error()
	}
	return rec, ""
}

func itemErrorMessage(item domain.AdResult) string {
	switch {
	case item.Err != nil:
		return item.Err.Error()
	case item.Status != http.StatusOK:
		return fmt.Sprintf("upstream status %d", item.Status)
	default:
		return "upstream returned no ad"
	}
}

// chunkIDs splits ids into consecutive slices of at most size.
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = port.MaxBatchSize
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
