package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
)

// WorkspaceRepository implements port.WorkspaceDirectory.
type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository returns a new repository instance.
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

// WorkspaceForUser returns the workspace userID belongs to.
func (r *WorkspaceRepository) WorkspaceForUser(ctx context.Context, userID uuid.UUID) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := r.pool.QueryRow(ctx, `
        SELECT w.id, w.name, w.created_at
        FROM workspaces w
        JOIN workspace_members m ON m.workspace_id = w.id
        WHERE m.user_id = $1
        ORDER BY m.created_at
        LIMIT 1`, userID).Scan(&ws.ID, &ws.Name, &ws.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// WorkspaceByID returns a workspace by id.
func (r *WorkspaceRepository) WorkspaceByID(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := r.pool.QueryRow(ctx, `SELECT id, name, created_at FROM workspaces WHERE id = $1`, workspaceID).
		Scan(&ws.ID, &ws.Name, &ws.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// Credential returns the stored token for an ad account. Account ids match
// with or without the act_ prefix.
func (r *WorkspaceRepository) Credential(ctx context.Context, workspaceID uuid.UUID, accountID string) (*domain.Credential, error) {
	var c domain.Credential
	err := r.pool.QueryRow(ctx, `
        SELECT workspace_id, account_id, access_token, expires_at
        FROM ad_account_credentials
        WHERE workspace_id = $1
          AND regexp_replace(account_id, '^act_', '') = regexp_replace($2, '^act_', '')
        ORDER BY updated_at DESC
        LIMIT 1`, workspaceID, accountID).
		Scan(&c.WorkspaceID, &c.AccountID, &c.AccessToken, &c.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
