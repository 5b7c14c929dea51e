// Package repository defines data access interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/a6w/mapmo/internal/model"
)

// LabelRepository provides owner-scoped access to labels.
// Every single-entity read and every delete verifies ownership; a mismatch
// is reported as errs.ErrNotFound, indistinguishable from a missing label.
type LabelRepository interface {
	// List returns all labels of the owner.
	List(ctx context.Context, ownerID string) ([]model.Label, error)
	// Get returns one label by id, owner-checked.
	Get(ctx context.Context, id, ownerID string) (*model.Label, error)
	// Add stores a new label and returns its assigned id.
	Add(ctx context.Context, ownerID string, label model.Label) (string, error)
	// Update replaces name/color/location of an existing label, owner-checked.
	Update(ctx context.Context, id string, label model.Label, ownerID string) error
	// Delete removes a label, owner-checked.
	Delete(ctx context.Context, id, ownerID string) error
}
