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

// LabelRepo implements repository.LabelRepository over the document store.
type LabelRepo struct {
	store     store.Client
	entities  *cache.EntityCache[cache.Owned[model.Label]]
	lists     *cache.ListCache[model.Label]
	noteLists repository.NoteListInvalidator
	keys      *cache.KeyMutex
	log       *zap.Logger
}

var _ repository.LabelRepository = (*LabelRepo)(nil)

// List returns all labels of the owner, serving the cached collection when
// present and populating both caches after a remote fetch.
func (r *LabelRepo) List(ctx context.Context, ownerID string) ([]model.Label, error) {
	if list, ok := r.lists.Get(ownerID); ok {
		return list, nil
	}

	docs, err := r.store.Query(ctx, store.CollectionLabel, store.FieldUserID, ownerID)
	if err != nil {
		r.log.Warn("label query failed", zap.String("owner", ownerID), zap.Error(err))
		return nil, fmt.Errorf("query labels: %w", err)
	}
	labels := codec.DecodeLabels(docs)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.lists.Put(ownerID, labels)
	for _, l := range labels {
		r.entities.Put(l.ID, cache.Owned[model.Label]{OwnerID: ownerID, Value: l})
	}
	return labels, nil
}

// Get returns one label, owner-checked. A cache hit answers without any
// remote call; a hit under a different owner is not-found.
func (r *LabelRepo) Get(ctx context.Context, id, ownerID string) (*model.Label, error) {
	if e, ok := r.entities.Get(id); ok {
		if e.OwnerID != ownerID {
			return nil, errs.ErrNotFound
		}
		v := e.Value
		return &v, nil
	}

	doc, err := r.store.GetByID(ctx, store.CollectionLabel, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrNotFound
		}
		r.log.Warn("label fetch failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get label: %w", err)
	}
	if owner, ok := codec.OwnerOf(doc); !ok || owner != ownerID {
		return nil, errs.ErrNotFound
	}
	label, err := codec.DecodeLabel(doc)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.entities.Put(id, cache.Owned[model.Label]{OwnerID: ownerID, Value: *label})
	return label, nil
}

// Add stores a new label and returns its assigned id. On success the entity
// cache holds the stored value and the owner's cached collection is kept
// consistent; the grouped note view is rebuilt lazily.
func (r *LabelRepo) Add(ctx context.Context, ownerID string, label model.Label) (string, error) {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	doc, err := r.store.Add(ctx, store.CollectionLabel, codec.EncodeLabel(ownerID, label))
	if err != nil {
		r.log.Warn("label add failed", zap.String("owner", ownerID), zap.Error(err))
		return "", fmt.Errorf("add label: %w", err)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	stored, err := codec.DecodeLabel(doc)
	if err != nil {
		// Written but not cacheable; the next read refetches.
		return doc.ID, nil
	}
	r.entities.Put(stored.ID, cache.Owned[model.Label]{OwnerID: ownerID, Value: *stored})
	r.lists.AppendOrReplace(ownerID, *stored)
	r.noteLists.Invalidate(ownerID)
	return stored.ID, nil
}

// Update replaces the label's mutable fields. The ownership check runs on
// the read path first; on mismatch no write is issued.
func (r *LabelRepo) Update(ctx context.Context, id string, label model.Label, ownerID string) error {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}
	doc, err := r.store.Update(ctx, store.CollectionLabel, id, codec.EncodeLabelUpdate(label))
	if err != nil {
		r.log.Warn("label update failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("update label: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	stored, err := codec.DecodeLabel(doc)
	if err != nil {
		r.entities.Remove(id)
		r.lists.Invalidate(ownerID)
		r.noteLists.Invalidate(ownerID)
		return nil
	}
	r.entities.Put(id, cache.Owned[model.Label]{OwnerID: ownerID, Value: *stored})
	r.lists.AppendOrReplace(ownerID, *stored)
	r.noteLists.Invalidate(ownerID)
	return nil
}

// Delete removes a label, owner-checked. Notes referencing it keep their
// labelID; grouping treats them as a dangling group from then on.
func (r *LabelRepo) Delete(ctx context.Context, id, ownerID string) error {
	r.keys.Lock(ownerID)
	defer r.keys.Unlock(ownerID)

	if _, err := r.Get(ctx, id, ownerID); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, store.CollectionLabel, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrNotFound
		}
		r.log.Warn("label delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete label: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.entities.Remove(id)
	r.lists.Remove(ownerID, id)
	r.noteLists.Invalidate(ownerID)
	return nil
}
