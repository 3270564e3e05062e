package registry

import (
	"encoding/json"

	"github.com/SakethSripada/DesktopDev/internal/storage"
	"github.com/SakethSripada/DesktopDev/pkg/badgerfx"
)

const (
	prefix = "workspace:"

	prefixByID   = prefix + "id:"
	prefixByPath = prefix + "path:"
)

type workspaceModel struct {
	storage.BaseEntity

	Path      string `json:"path"`
	RemoteURL string `json:"remote_url"`
	Kind      Kind   `json:"kind"`
}

func newWorkspaceModel(draft WorkspaceDraft) *workspaceModel {
	return &workspaceModel{
		BaseEntity: storage.NewBaseEntity(),
		Path:      draft.Path,
		RemoteURL: draft.RemoteURL,
		Kind:      draft.Kind,
	}
}

func newWorkspace(model *workspaceModel) Workspace {
	return Workspace{
		WorkspaceDraft: WorkspaceDraft{
			Path:      model.Path,
			RemoteURL: model.RemoteURL,
			Kind:      model.Kind,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func pathIndex(path string) string {
	return prefixByPath + path
}

// StorageKey implements badgerfx.Entity.
func (m *workspaceModel) StorageKey() string {
	return prefixByID + m.ID.String()
}

// StorageIndexes implements badgerfx.Entity.
func (m *workspaceModel) StorageIndexes() []string {
	return []string{pathIndex(m.Path)}
}

// MarshalStorage implements badgerfx.Entity.
func (m *workspaceModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

// UnmarshalStorage implements badgerfx.Entity.
func (m *workspaceModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

var _ badgerfx.Entity = (*workspaceModel)(nil)
