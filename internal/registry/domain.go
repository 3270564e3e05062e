package registry

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells how the server connected to a workspace.
type Kind string

const (
	KindCloned   Kind = "cloned"
	KindAttached Kind = "attached"
)

type WorkspaceDraft struct {
	Path      string // Canonical local path
	RemoteURL string // Remote URL without credentials, optional
	Kind      Kind
}

type Workspace struct {
	WorkspaceDraft

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
