// Package docstore implements the repository interfaces on top of the
// remote document store, layering read-through caches, ownership checks and
// the grouped note list view over store.Client.
//
// Failure semantics: remote failures are logged and returned as wrapped
// errors, ownership mismatches and missing documents both surface as
// errs.ErrNotFound, and a failed write never leaves partial state in any
// cache. The caches are correctness-optional throughout — behavior is
// identical on hit and miss.
package docstore

import (
	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/cache"
	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/store"
)

// Repos bundles the repository set sharing one cache lifecycle. Create one
// per store client; tear down by dropping the whole value.
type Repos struct {
	Labels   *LabelRepo
	Notes    *NoteRepo
	Users    *UserRepo
	NoteList *NoteListRepo
}

// New wires the repositories over client with a shared set of caches and a
// shared per-owner write mutex.
func New(client store.Client, log *zap.Logger) *Repos {
	labelEntities := cache.NewEntityCache[cache.Owned[model.Label]]()
	labelLists := cache.NewListCache(func(l model.Label) string { return l.ID })
	noteEntities := cache.NewEntityCache[cache.Owned[model.Note]]()
	noteLists := cache.NewEntityCache[model.NoteList]()
	users := cache.NewEntityCache[model.User]()
	keys := cache.NewKeyMutex()

	noteList := &NoteListRepo{
		store:         client,
		lists:         noteLists,
		noteEntities:  noteEntities,
		labelEntities: labelEntities,
		log:           log,
	}
	return &Repos{
		Labels: &LabelRepo{
			store:     client,
			entities:  labelEntities,
			lists:     labelLists,
			noteLists: noteList,
			keys:      keys,
			log:       log,
		},
		Notes: &NoteRepo{
			store:     client,
			entities:  noteEntities,
			noteLists: noteList,
			keys:      keys,
			log:       log,
		},
		Users: &UserRepo{
			store:    client,
			entities: users,
			keys:     keys,
			log:      log,
		},
		NoteList: noteList,
	}
}
