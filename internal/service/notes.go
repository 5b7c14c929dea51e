package service

import (
	"context"
	"errors"

	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
)

// NoteService defines owner-scoped note operations.
type NoteService interface {
	// Get returns one note by id.
	Get(ctx context.Context, id, ownerID string) (*model.Note, error)
	// Add creates a note and returns its assigned id.
	Add(ctx context.Context, ownerID string, note model.Note) (string, error)
	// Update replaces a note's mutable fields.
	Update(ctx context.Context, id string, note model.Note, ownerID string) error
	// Delete removes a note.
	Delete(ctx context.Context, id, ownerID string) error
	// ListGrouped returns the owner's notes grouped by label.
	ListGrouped(ctx context.Context, ownerID string) (*model.NoteList, error)
}

type NoteServiceImpl struct {
	notes repository.NoteRepository
	lists repository.NoteListRepository
}

// NewNoteService constructs NoteService over the note and note list repositories.
func NewNoteService(notes repository.NoteRepository, lists repository.NoteListRepository) *NoteServiceImpl {
	return &NoteServiceImpl{notes: notes, lists: lists}
}

// Get validates ids and delegates.
func (s *NoteServiceImpl) Get(ctx context.Context, id, ownerID string) (*model.Note, error) {
	if id == "" || ownerID == "" {
		return nil, errors.New("validation: empty id/ownerID")
	}
	return s.notes.Get(ctx, id, ownerID)
}

// Add validates the note payload and delegates. The label reference is not
// resolved here — it is a weak relation and may point anywhere.
func (s *NoteServiceImpl) Add(ctx context.Context, ownerID string, note model.Note) (string, error) {
	if ownerID == "" {
		return "", errors.New("validation: empty ownerID")
	}
	if err := validateLocation(note.Location); err != nil {
		return "", err
	}
	return s.notes.Add(ctx, ownerID, note)
}

// Update validates ids and payload, then delegates.
func (s *NoteServiceImpl) Update(ctx context.Context, id string, note model.Note, ownerID string) error {
	if id == "" || ownerID == "" {
		return errors.New("validation: empty id/ownerID")
	}
	if err := validateLocation(note.Location); err != nil {
		return err
	}
	return s.notes.Update(ctx, id, note, ownerID)
}

// Delete validates ids and delegates.
func (s *NoteServiceImpl) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" || ownerID == "" {
		return errors.New("validation: empty id/ownerID")
	}
	return s.notes.Delete(ctx, id, ownerID)
}

// ListGrouped validates the owner id and delegates to the list repository.
func (s *NoteServiceImpl) ListGrouped(ctx context.Context, ownerID string) (*model.NoteList, error) {
	if ownerID == "" {
		return nil, errors.New("validation: empty ownerID")
	}
	return s.lists.List(ctx, ownerID)
}
