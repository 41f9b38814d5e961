package port

import (
	"context"

	"github.com/google/uuid"

	"adpulse/internal/core/domain"
)

// WorkspaceDirectory resolves tenants and their upstream credentials.
// Lookups return nil, nil when nothing matches.
type WorkspaceDirectory interface {
	WorkspaceForUser(ctx context.Context, userID uuid.UUID) (*domain.Workspace, error)
	WorkspaceByID(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error)
	Credential(ctx context.Context, workspaceID uuid.UUID, accountID string) (*domain.Credential, error)
}
