// Package store defines the remote document store contract consumed by the
// repositories: named collections of field-map documents with get-by-id,
// query-by-field, add, update and delete operations. Concrete backends live
// in subpackages.
package store

import (
	"context"
	"time"
)

// Fields is the raw field map of a document as stored remotely.
type Fields map[string]any

// Document is a stored document together with its server-assigned id.
type Document struct {
	ID     string
	Fields Fields
}

// GeoPoint is the opaque geographic scalar of the wire format.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// serverTimestamp is the marker type behind ServerTimestamp.
type serverTimestamp struct{}

// ServerTimestamp is a write-time marker. A backend replaces it with its own
// current time (whole epoch seconds) while persisting the fields. Writers
// must use this marker instead of the client clock.
var ServerTimestamp = serverTimestamp{}

// Client is the remote store contract. Implementations must treat every
// operation as independently cancelable via ctx and must never mutate the
// Fields values passed in.
//
// Add and Update return the document as stored, with the assigned id and all
// ServerTimestamp markers resolved, so callers can cache the exact remote
// state without a follow-up read.
type Client interface {
	// Query returns all documents of collection whose field equals value.
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)

	// GetByID returns a single document or errs.ErrNotFound.
	GetByID(ctx context.Context, collection, id string) (Document, error)

	// Add stores a new document and assigns its id.
	Add(ctx context.Context, collection string, fields Fields) (Document, error)

	// Update merges the given fields into an existing document.
	// Returns errs.ErrNotFound if the document does not exist.
	Update(ctx context.Context, collection, id string, fields Fields) (Document, error)

	// Delete removes a document. Returns errs.ErrNotFound if absent.
	Delete(ctx context.Context, collection, id string) error
}

// ResolveWriteFields returns a copy of fields with ServerTimestamp markers
// replaced by now (truncated to whole seconds) and GeoPoint values converted
// to their nested-map wire form. Backends call this before persisting.
func ResolveWriteFields(fields Fields, now time.Time) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		switch tv := v.(type) {
		case serverTimestamp:
			out[k] = now.Unix()
		case GeoPoint:
			out[k] = map[string]any{"lat": tv.Lat, "lng": tv.Lng}
		default:
			out[k] = v
		}
	}
	return out
}

// GetString reads a string field. Returns ok=false for absent or non-string
// values (including explicit nulls).
func (d Document) GetString(key string) (string, bool) {
	s, ok := d.Fields[key].(string)
	return s, ok
}

// GetBool reads a boolean field.
func (d Document) GetBool(key string) (bool, bool) {
	b, ok := d.Fields[key].(bool)
	return b, ok
}

// GetGeoPoint reads a geo-point field. It accepts both the typed GeoPoint
// form and the nested-map form produced by a JSON round trip.
func (d Document) GetGeoPoint(key string) (GeoPoint, bool) {
	switch v := d.Fields[key].(type) {
	case GeoPoint:
		return v, true
	case map[string]any:
		lat, okLat := asFloat(v["lat"])
		lng, okLng := asFloat(v["lng"])
		if okLat && okLng {
			return GeoPoint{Lat: lat, Lng: lng}, true
		}
	}
	return GeoPoint{}, false
}

// GetTimestamp reads a server-timestamp field as whole epoch seconds.
// Numeric wire representations (int64 or JSON float64) are both accepted.
func (d Document) GetTimestamp(key string) (int64, bool) {
	switch v := d.Fields[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
