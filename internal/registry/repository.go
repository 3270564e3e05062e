package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/SakethSripada/DesktopDev/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
)

type Repository struct {
	db       *badger.DB
	entities *badgerfx.Repository[*workspaceModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
		entities: badgerfx.NewRepository(func() *workspaceModel {
			return new(workspaceModel)
		}),
	}
}

// Upsert stores draft, keeping the identity of an existing record for the
// same path.
func (r *Repository) Upsert(_ context.Context, draft WorkspaceDraft) (*Workspace, error) {
	var stored *workspaceModel

	err := r.db.Update(func(txn *badger.Txn) error {
		existing, err := r.entities.ReadByIndex(txn, pathIndex(draft.Path))
		switch {
		case errors.Is(err, badgerfx.ErrNotFound):
			stored = newWorkspaceModel(draft)
		case err != nil:
			return err
		default:
			stored = existing
			stored.Kind = draft.Kind
			if draft.RemoteURL != "" {
				stored.RemoteURL = draft.RemoteURL
			}
			stored.Touch()
		}

		return r.entities.Write(txn, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store workspace: %w", err)
	}

	workspace := newWorkspace(stored)
	return &workspace, nil
}

// List returns all workspaces, most recently used first.
func (r *Repository) List(_ context.Context) ([]Workspace, error) {
	var models []*workspaceModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.entities.List(txn, prefixByID, badger.DefaultIteratorOptions)
		models = found
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	workspaces := make([]Workspace, len(models))
	for i, model := range models {
		workspaces[i] = newWorkspace(model)
	}
	slices.SortFunc(workspaces, func(a, b Workspace) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return workspaces, nil
}

// DeleteByPath forgets the workspace registered for path.
func (r *Repository) DeleteByPath(_ context.Context, path string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		existing, err := r.entities.ReadByIndex(txn, pathIndex(path))
		if errors.Is(err, badgerfx.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if err != nil {
			return err
		}

		return r.entities.Delete(txn, existing.StorageKey())
	})
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return nil
}
