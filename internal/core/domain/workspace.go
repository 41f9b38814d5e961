package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the tenant that owns mirrored ad accounts.
type Workspace struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Credential is an access token for one ad account of a workspace. It is
// acquired and renewed elsewhere.
type Credential struct {
	WorkspaceID uuid.UUID
	AccountID   string
	AccessToken string
	ExpiresAt   *time.Time
}

// Valid reports whether the token is present and not expired at now.
func (c *Credential) Valid(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	return c.ExpiresAt == nil || now.Before(*c.ExpiresAt)
}

// RefreshJob asks a worker to run the batch pipeline in the background.
type RefreshJob struct {
	JobID       uuid.UUID `json:"job_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	AccountID   string    `json:"account_id"`
	AdIDs       []string  `json:"ad_ids"`
	Force       bool      `json:"force"`
	RequestedAt time.Time `json:"requested_at"`
}
