package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/cache"
	"github.com/a6w/mapmo/internal/codec"
	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
	"github.com/a6w/mapmo/internal/store"
)

// NoteRepo implements repository.NoteRepository over the document store.
// Every successful write invalidates the owner's grouped note list view.
type NoteRepo struct {
	store     store.Client
	entities  *cache.EntityCache[cache.Owned[model.Note]]
	noteLists repository.NoteListInvalidator
	keys      *cache.KeyMutex
	log       *zap.Logger
}

var _ repository.NoteRepository = (*NoteRepo)(nil)

// Get returns one note, owner-checked. A cache hit answers without any
// remote call.
func (r *NoteRepo) Get(ctx context.Context, id, ownerID string) (*model.Note, error) {
	if e, ok := r.entities.Get(id); ok {
		if e.OwnerID != ownerID {
			return nil, errs.ErrNotFound
		}
		v := e.Value
		return &v, nil
	}

	doc, err := r.store.GetByID(ctx, store.CollectionMapmo, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrNotFound
		}
		r.log.Warn("note fetch failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get note: %w", err)
	}
	if owner, ok := codec.OwnerOf(doc); !ok || owner != ownerID {
		return nil, errs.ErrNotFound
	}
	note, err := codec.DecodeNote(doc)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.entities.Put(id, cache.Owned[model.Note]{OwnerID: ownerID, Value: *note})
	return note, nil
}

// Add stores a new note and returns its assigned id. The store assigns both
// the id and updatedAt; the cached entity carries the stored values, so an
// immediate Get answers from cache.
func (r *NoteRepo) Add(ctx context.Context, ownerID string, note model.Note) (string, error) {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	doc, err := r.store.Add(ctx, store.CollectionMapmo, codec.EncodeNote(ownerID, note))
	if err != nil {
		r.log.Warn("note add failed", zap.String("owner", ownerID), zap.Error(err))
		return "", fmt.Errorf("add note: %w", err)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	stored, err := codec.DecodeNote(doc)
	if err != nil {
		r.noteLists.Invalidate(ownerID)
		return doc.ID, nil
	}
	r.entities.Put(stored.ID, cache.Owned[model.Note]{OwnerID: ownerID, Value: *stored})
	r.noteLists.Invalidate(ownerID)
	return stored.ID, nil
}

// Update replaces a note's mutable fields; the store assigns a fresh
// updatedAt. The ownership check runs on the read path first; on mismatch
// no write is issued.
func (r *NoteRepo) Update(ctx context.Context, id string, note model.Note, ownerID string) error {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}
	doc, err := r.store.Update(ctx, store.CollectionMapmo, id, codec.EncodeNoteUpdate(note))
	if err != nil {
		r.log.Warn("note update failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("update note: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	stored, err := codec.DecodeNote(doc)
	if err != nil {
		r.entities.Remove(id)
		r.noteLists.Invalidate(ownerID)
		return nil
	}
	r.entities.Put(id, cache.Owned[model.Note]{OwnerID: ownerID, Value: *stored})
	r.noteLists.Invalidate(ownerID)
	return nil
}

// Delete removes a note, owner-checked.
func (r *NoteRepo) Delete(ctx context.Context, id, ownerID string) error {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, store.CollectionMapmo, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrNotFound
		}
		r.log.Warn("note delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete note: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.entities.Remove(id)
	r.noteLists.Invalidate(ownerID)
	return nil
}
