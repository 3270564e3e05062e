package workspaces

import (
	"time"

	"github.com/google/uuid"
)

// DeleteRequest identifies the workspace record to forget.
type DeleteRequest struct {
	LocalPath string `json:"localPath" validate:"required"`
}

// WorkspaceResponse represents a known workspace.
type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	RemoteURL string    `json:"remoteUrl,omitempty"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
