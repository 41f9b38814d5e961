package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
)

const creativeColumns = `id, workspace_id, ad_id, account_id, creative_id, creative_type,
       image_url, image_url_hd, thumbnail_url, image_width, image_height, quality,
       video_url, video_duration_seconds, video_format, video_id,
       title, body, description, call_to_action, link_url,
       cached_image_url, cached_thumbnail_url, cache_expires_at, cached_size_bytes,
       is_complete, fetch_status, fetch_attempts, last_validated_at, error_message, extra,
       created_at, updated_at`

// CreativeRepository implements port.CreativeRepository using pgxpool.
type CreativeRepository struct {
	pool        *pgxpool.Pool
	maxAttempts int
}

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool, maxAttempts: domain.MaxFetchAttempts}
}

// Get returns the record for (workspaceID, adID), or nil when none exists.
func (r *CreativeRepository) Get(ctx context.Context, workspaceID uuid.UUID, adID string) (*domain.CreativeRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+creativeColumns+` FROM ad_creatives WHERE workspace_id = $1 AND ad_id = $2`, workspaceID, adID)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanCreative)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetMany returns the stored records among adIDs keyed by ad id.
func (r *CreativeRepository) GetMany(ctx context.Context, workspaceID uuid.UUID, adIDs []string) (map[string]*domain.CreativeRecord, error) {
	out := make(map[string]*domain.CreativeRecord, len(adIDs))
	if len(adIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+creativeColumns+` FROM ad_creatives WHERE workspace_id = $1 AND ad_id = ANY($2)`, workspaceID, adIDs)
	if err != nil {
		return nil, err
	}
	recs, err := pgx.CollectRows(rows, scanCreative)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		out[rec.AdID] = rec
	}
	return out, nil
}

// Upsert inserts rec or replaces the stored row for the same (workspace,
// ad). The attempt count is advanced from the stored value, and a record
// without data whose attempts reach the ceiling is stored as failed.
func (r *CreativeRepository) Upsert(ctx context.Context, rec *domain.CreativeRecord) (*domain.CreativeRecord, error) {
	query := `
        INSERT INTO ad_creatives (
            workspace_id, ad_id, account_id, creative_id, creative_type,
            image_url, image_url_hd, thumbnail_url, image_width, image_height, quality,
            video_url, video_duration_seconds, video_format, video_id,
            title, body, description, call_to_action, link_url,
            cached_image_url, cached_thumbnail_url, cache_expires_at, cached_size_bytes,
            is_complete, fetch_status, fetch_attempts, last_validated_at, error_message, extra,
            created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
                $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, GREATEST($27, 1), $28, $29, $30,
                now(), now())
        ON CONFLICT (workspace_id, ad_id) DO UPDATE SET
            account_id             = EXCLUDED.account_id,
            creative_id            = EXCLUDED.creative_id,
            creative_type          = EXCLUDED.creative_type,
            image_url              = EXCLUDED.image_url,
            image_url_hd           = EXCLUDED.image_url_hd,
            thumbnail_url          = EXCLUDED.thumbnail_url,
            image_width            = EXCLUDED.image_width,
            image_height           = EXCLUDED.image_height,
            quality                = EXCLUDED.quality,
            video_url              = EXCLUDED.video_url,
            video_duration_seconds = EXCLUDED.video_duration_seconds,
            video_format           = EXCLUDED.video_format,
            video_id               = EXCLUDED.video_id,
            title                  = EXCLUDED.title,
            body                   = EXCLUDED.body,
            description            = EXCLUDED.description,
            call_to_action         = EXCLUDED.call_to_action,
            link_url               = EXCLUDED.link_url,
            cached_image_url       = EXCLUDED.cached_image_url,
            cached_thumbnail_url   = EXCLUDED.cached_thumbnail_url,
            cache_expires_at       = EXCLUDED.cache_expires_at,
            cached_size_bytes      = EXCLUDED.cached_size_bytes,
            is_complete            = EXCLUDED.is_complete,
            fetch_status           = CASE
                WHEN EXCLUDED.fetch_status = 'pending' AND ad_creatives.fetch_attempts + 1 >= $31 THEN 'failed'
                ELSE EXCLUDED.fetch_status END,
            fetch_attempts         = ad_creatives.fetch_attempts + 1,
            last_validated_at      = GREATEST(ad_creatives.last_validated_at, EXCLUDED.last_validated_at),
            error_message          = EXCLUDED.error_message,
            extra                  = EXCLUDED.extra,
            updated_at             = now()
        RETURNING ` + creativeColumns

	rows, err := r.pool.Query(ctx, query,
		rec.WorkspaceID, rec.AdID, rec.AccountID, rec.CreativeID, rec.CreativeType,
		rec.ImageURL, rec.ImageURLHD, rec.ThumbnailURL, rec.ImageWidth, rec.ImageHeight, rec.Quality,
		rec.VideoURL, rec.VideoDurationSeconds, rec.VideoFormat, rec.VideoID,
		rec.Title, rec.Body, rec.Description, rec.CallToAction, rec.LinkURL,
		rec.CachedImageURL, rec.CachedThumbnailURL, rec.CacheExpiresAt, rec.CachedSizeBytes,
		rec.IsComplete, rec.FetchStatus, rec.FetchAttempts, rec.LastValidatedAt, rec.ErrorMessage, rec.Extra,
		r.maxAttempts,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert creative: %w", err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanCreative)
	if err != nil {
		return nil, fmt.Errorf("upsert creative: %w", err)
	}
	return stored, nil
}

// RecordFailure counts one failed attempt for (workspaceID, adID). Data
// already stored is kept; only a record that never had data moves to failed
// once the attempt ceiling is reached.
func (r *CreativeRepository) RecordFailure(ctx context.Context, workspaceID uuid.UUID, adID, accountID, message string) (*domain.CreativeRecord, error) {
	query := `
        INSERT INTO ad_creatives (workspace_id, ad_id, account_id, fetch_status, fetch_attempts,
                                  error_message, last_validated_at, created_at, updated_at)
        VALUES ($1, $2, $3, CASE WHEN 1 >= $5 THEN 'failed' ELSE 'pending' END, 1, $4, now(), now(), now())
        ON CONFLICT (workspace_id, ad_id) DO UPDATE SET
            fetch_attempts    = ad_creatives.fetch_attempts + 1,
            error_message     = EXCLUDED.error_message,
            last_validated_at = now(),
            fetch_status      = CASE
                WHEN ad_creatives.fetch_status IN ('pending', 'failed') AND ad_creatives.fetch_attempts + 1 >= $5 THEN 'failed'
                ELSE ad_creatives.fetch_status END,
            updated_at        = now()
        RETURNING ` + creativeColumns

	rows, err := r.pool.Query(ctx, query, workspaceID, adID, accountID, message, r.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("record failure: %w", err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanCreative)
	if err != nil {
		return nil, fmt.Errorf("record failure: %w", err)
	}
	return stored, nil
}

func scanCreative(row pgx.CollectableRow) (*domain.CreativeRecord, error) {
	var rec domain.CreativeRecord
	err := row.Scan(
		&rec.ID, &rec.WorkspaceID, &rec.AdID, &rec.AccountID, &rec.CreativeID, &rec.CreativeType,
		&rec.ImageURL, &rec.ImageURLHD, &rec.ThumbnailURL, &rec.ImageWidth, &rec.ImageHeight, &rec.Quality,
		&rec.VideoURL, &rec.VideoDurationSeconds, &rec.VideoFormat, &rec.VideoID,
		&rec.Title, &rec.Body, &rec.Description, &rec.CallToAction, &rec.LinkURL,
		&rec.CachedImageURL, &rec.CachedThumbnailURL, &rec.CacheExpiresAt, &rec.CachedSizeBytes,
		&rec.IsComplete, &rec.FetchStatus, &rec.FetchAttempts, &rec.LastValidatedAt, &rec.ErrorMessage, &rec.Extra,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return &rec, err
}
