package docstore

import (
	"testing"

	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/store"
	"github.com/a6w/mapmo/internal/store/memstore"
)

func newRepos(t *testing.T) (*Repos, *memstore.Store) {
	t.Helper()
	ms := memstore.New()
	return New(ms, zap.NewNop()), ms
}

func seedLabel(ms *memstore.Store, id, ownerID, name string) {
	ms.Seed(store.CollectionLabel, id, store.Fields{
		store.FieldName:     name,
		store.FieldColor:    "#fff",
		store.FieldLocation: store.GeoPoint{Lat: 37.5, Lng: 127.0},
		store.FieldUserID:   ownerID,
	})
}

func seedNote(ms *memstore.Store, id, ownerID, content, labelID string) {
	ms.Seed(store.CollectionMapmo, id, store.Fields{
		store.FieldContent:       content,
		store.FieldNotifyEnabled: false,
		store.FieldLabelID:       labelID,
		store.FieldLocation:      store.GeoPoint{Lat: 37.5, Lng: 127.0},
		store.FieldUpdatedAt:     store.ServerTimestamp,
		store.FieldUserID:        ownerID,
	})
}

func testLabel() model.Label {
	return model.Label{Name: "Home", Color: "#ff0000", Location: model.Location{Lat: 37.5, Lng: 127.0}}
}

func testNote(labelID string) model.Note {
	return model.Note{Content: "milk", LabelID: labelID, Location: model.Location{Lat: 37.5, Lng: 127.0}}
}
