// Package codec converts between remote store documents and domain entities.
// Decoding is a validation gate: entities without a location are rejected
// with errs.ErrMissingField rather than defaulted, and list decoding drops
// such rows silently while the list operation itself still succeeds.
package codec

import (
	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/model"
	"github.com/a6w/mapmo/internal/store"
)

// OwnerOf reads the stored owner field of a document.
func OwnerOf(doc store.Document) (string, bool) {
	return doc.GetString(store.FieldUserID)
}

// DecodeLabel converts a label document. Missing location fails the gate.
func DecodeLabel(doc store.Document) (*model.Label, error) {
	gp, ok := doc.GetGeoPoint(store.FieldLocation)
	if !ok {
		return nil, errs.ErrMissingField
	}
	name, _ := doc.GetString(store.FieldName)
	color, _ := doc.GetString(store.FieldColor)
	return &model.Label{
		ID:       doc.ID,
		Name:     name,
		Color:    color,
		Location: model.Location{Lat: gp.Lat, Lng: gp.Lng},
	}, nil
}

// DecodeLabels converts a label query result, dropping invalid rows.
func DecodeLabels(docs []store.Document) []model.Label {
	out := make([]model.Label, 0, len(docs))
	for _, doc := range docs {
		l, err := DecodeLabel(doc)
		if err != nil {
			continue
		}
		out = append(out, *l)
	}
	return out
}

// EncodeLabel builds the field map for creating a label.
func EncodeLabel(ownerID string, l model.Label) store.Fields {
	return store.Fields{
		store.FieldColor:    l.Color,
		store.FieldName:     l.Name,
		store.FieldLocation: store.GeoPoint{Lat: l.Location.Lat, Lng: l.Location.Lng},
		store.FieldUserID:   ownerID,
	}
}

// EncodeLabelUpdate builds the partial field map for updating a label.
// The owner field is never rewritten.
func EncodeLabelUpdate(l model.Label) store.Fields {
	return store.Fields{
		store.FieldColor:    l.Color,
		store.FieldName:     l.Name,
		store.FieldLocation: store.GeoPoint{Lat: l.Location.Lat, Lng: l.Location.Lng},
	}
}

// DecodeNote converts a note document. Missing location fails the gate.
func DecodeNote(doc store.Document) (*model.Note, error) {
	gp, ok := doc.GetGeoPoint(store.FieldLocation)
	if !ok {
		return nil, errs.ErrMissingField
	}
	content, _ := doc.GetString(store.FieldContent)
	notify, _ := doc.GetBool(store.FieldNotifyEnabled)
	labelID, _ := doc.GetString(store.FieldLabelID) // nullable relation
	updatedAt, _ := doc.GetTimestamp(store.FieldUpdatedAt)
	return &model.Note{
		ID:            doc.ID,
		Content:       content,
		NotifyEnabled: notify,
		LabelID:       labelID,
		Location:      model.Location{Lat: gp.Lat, Lng: gp.Lng},
		UpdatedAt:     updatedAt,
	}, nil
}

// DecodeNotes converts a note query result, dropping invalid rows.
func DecodeNotes(docs []store.Document) []model.Note {
	out := make([]model.Note, 0, len(docs))
	for _, doc := range docs {
		n, err := DecodeNote(doc)
		if err != nil {
			continue
		}
		out = append(out, *n)
	}
	return out
}

// EncodeNote builds the field map for creating a note. The updatedAt field
// is always the server-timestamp marker, never the client clock.
func EncodeNote(ownerID string, n model.Note) store.Fields {
	return store.Fields{
		store.FieldContent:       n.Content,
		store.FieldNotifyEnabled: n.NotifyEnabled,
		store.FieldLabelID:       n.LabelID,
		store.FieldLocation:      store.GeoPoint{Lat: n.Location.Lat, Lng: n.Location.Lng},
		store.FieldUpdatedAt:     store.ServerTimestamp,
		store.FieldUserID:        ownerID,
	}
}

// EncodeNoteUpdate builds the partial field map for updating a note.
// Every update refreshes updatedAt with a fresh server timestamp.
func EncodeNoteUpdate(n model.Note) store.Fields {
	return store.Fields{
		store.FieldContent:       n.Content,
		store.FieldNotifyEnabled: n.NotifyEnabled,
		store.FieldLabelID:       n.LabelID,
		store.FieldLocation:      store.GeoPoint{Lat: n.Location.Lat, Lng: n.Location.Lng},
		store.FieldUpdatedAt:     store.ServerTimestamp,
	}
}

// DecodeUser converts a user document. Users carry no location; the gate
// does not apply to them.
func DecodeUser(doc store.Document) *model.User {
	nickname, _ := doc.GetString(store.FieldNickname)
	createdAt, _ := doc.GetTimestamp(store.FieldCreatedAt)
	return &model.User{
		ID:        doc.ID,
		Nickname:  nickname,
		CreatedAt: createdAt,
	}
}

// EncodeUser builds the field map for creating a user.
func EncodeUser(u model.User) store.Fields {
	return store.Fields{
		store.FieldNickname:  u.Nickname,
		store.FieldCreatedAt: store.ServerTimestamp,
	}
}
