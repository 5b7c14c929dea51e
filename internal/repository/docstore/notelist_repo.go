package docstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/aggregate"
	"github.com/a6w/mapmo/internal/cache"
	"github.com/a6w/mapmo/internal/codec"
	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/repository"
	"github.com/a6w/mapmo/internal/store"
)

// NoteListRepo builds and caches the grouped note list view per owner.
// An owner without notes gets an empty list; only remote failures produce
// an error, so callers can tell "nothing there" from "could not fetch".
type NoteListRepo struct {
	store         store.Client
	lists         *cache.EntityCache[model.NoteList] // keyed by ownerID
	noteEntities  *cache.EntityCache[cache.Owned[model.Note]]
	labelEntities *cache.EntityCache[cache.Owned[model.Label]]
	log           *zap.Logger
}

var _ repository.NoteListRepository = (*NoteListRepo)(nil)

// List returns the owner's notes grouped by label. A cache hit answers
// without any remote call; a miss fetches notes and labels, drops rows that
// fail the decode gate, aggregates, and populates the list cache plus the
// single-entity caches for every constituent note and label. The returned
// value is shared with the cache and must be treated as read-only.
func (r *NoteListRepo) List(ctx context.Context, ownerID string) (*model.NoteList, error) {
	if nl, ok := r.lists.Get(ownerID); ok {
		return &nl, nil
	}

	noteDocs, err := r.store.Query(ctx, store.CollectionMapmo, store.FieldUserID, ownerID)
	if err != nil {
		r.log.Warn("note query failed", zap.String("owner", ownerID), zap.Error(err))
		return nil, fmt.Errorf("query notes: %w", err)
	}
	labelDocs, err := r.store.Query(ctx, store.CollectionLabel, store.FieldUserID, ownerID)
	if err != nil {
		r.log.Warn("label query failed", zap.String("owner", ownerID), zap.Error(err))
		return nil, fmt.Errorf("query labels: %w", err)
	}

	notes := codec.DecodeNotes(noteDocs)
	labels := codec.DecodeLabels(labelDocs)
	nl := aggregate.Build(notes, labels)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.lists.Put(ownerID, nl)
	for _, n := range notes {
		r.noteEntities.Put(n.ID, cache.Owned[model.Note]{OwnerID: ownerID, Value: n})
	}
	for _, l := range labels {
		r.labelEntities.Put(l.ID, cache.Owned[model.Label]{OwnerID: ownerID, Value: l})
	}
	return &nl, nil
}

// Invalidate drops the cached view for the owner.
func (r *NoteListRepo) Invalidate(ownerID string) {
	r.lists.Remove(ownerID)
}
