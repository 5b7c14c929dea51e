package repository

import (
	"context"

	"github.com/a6w/mapmo/internal/model"
)

// NoteRepository provides owner-scoped access to individual notes.
// The grouped list view lives on NoteListRepository.
type NoteRepository interface {
	// Get returns one note by id, owner-checked.
	Get(ctx context.Context, id, ownerID string) (*model.Note, error)
	// Add stores a new note and returns its assigned id. The store assigns
	// updatedAt; the note's grouped list view for the owner is invalidated.
	Add(ctx context.Context, ownerID string, note model.Note) (string, error)
	// Update replaces a note's mutable fields with a fresh server updatedAt,
	// owner-checked.
	Update(ctx context.Context, id string, note model.Note, ownerID string) error
	// Delete removes a note, owner-checked.
	Delete(ctx context.Context, id, ownerID string) error
}

// NoteListRepository builds and caches the grouped note list view.
type NoteListRepository interface {
	// List returns the owner's notes grouped by label. An owner without
	// notes gets an empty list, not an error.
	List(ctx context.Context, ownerID string) (*model.NoteList, error)
	// Invalidate drops the cached view for the owner. Called by
	// NoteRepository after any successful note write.
	Invalidate(ownerID string)
}

// NoteListInvalidator is the slice of NoteListRepository that NoteRepository
// depends on to keep the derived view coherent.
type NoteListInvalidator interface {
	Invalidate(ownerID string)
}
