package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedData describes the demo tenant created by Seed.
type SeedData struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	AccountID   string
	AccessToken string
}

// DemoSeed is the default demo tenant.
var DemoSeed = SeedData{
	WorkspaceID: uuid.MustParse("0b9c7f0e-5a8e-4a51-9a43-6f2f1d7c0001"),
	UserID:      uuid.MustParse("0b9c7f0e-5a8e-4a51-9a43-6f2f1d7c1001"),
	AccountID:   "act_1000000000001",
	AccessToken: "demo-token",
}

// Seed inserts a demo workspace, its member and an ad account credential.
// It is safe to run repeatedly; the credential token is replaced.
func Seed(ctx context.Context, db *pgxpool.Pool, data SeedData) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `INSERT INTO workspaces (id, name, created_at)
VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`, data.WorkspaceID, "Demo workspace"); err != nil {
		return fmt.Errorf("seed workspace: %w", err)
	}
	if _, err = tx.Exec(ctx, `INSERT INTO workspace_members (workspace_id, user_id, created_at)
VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`, data.WorkspaceID, data.UserID); err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	if _, err = tx.Exec(ctx, `INSERT INTO ad_account_credentials (workspace_id, account_id, access_token, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (workspace_id, account_id) DO UPDATE SET access_token = EXCLUDED.access_token, updated_at = now()`,
		data.WorkspaceID, data.AccountID, data.AccessToken); err != nil {
		return fmt.Errorf("seed credential: %w", err)
	}
	return tx.Commit(ctx)
}
