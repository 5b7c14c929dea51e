// Package memstore is an in-memory store.Client. It backs repository tests
// (its per-operation call counters let tests assert that cache hits skip the
// remote store) and can serve as an embedded store for local runs.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/store"
)

// Counters is a snapshot of how many times each operation ran.
type Counters struct {
	Query   int
	GetByID int
	Add     int
	Update  int
	Delete  int
}

// Store is an in-memory, mutex-guarded document store.
type Store struct {
	mu    sync.Mutex
	data  map[string]map[string]store.Fields // collection -> id -> fields
	calls Counters
	err   error
	now   func() time.Time
}

var _ store.Client = (*Store)(nil)

// New creates an empty store using the wall clock for server timestamps.
func New() *Store {
	return &Store{
		data: make(map[string]map[string]store.Fields),
		now:  time.Now,
	}
}

// SetClock overrides the server clock. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetError makes every subsequent operation fail with err until reset with nil.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls returns a snapshot of the operation counters.
func (s *Store) Calls() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Seed stores a document with a fixed id, bypassing counters and markers
// except ServerTimestamp resolution. Test hook.
func (s *Store) Seed(collection, id string, fields store.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[id] = store.ResolveWriteFields(fields, s.now())
}

// Query returns all documents of collection whose top-level field equals value.
func (s *Store) Query(_ context.Context, collection, field string, value any) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Query++
	if s.err != nil {
		return nil, s.err
	}
	var out []store.Document
	for id, fields := range s.data[collection] {
		if fields[field] == value {
			out = append(out, store.Document{ID: id, Fields: copyFields(fields)})
		}
	}
	return out, nil
}

// GetByID returns one document or errs.ErrNotFound.
func (s *Store) GetByID(_ context.Context, collection, id string) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.GetByID++
	if s.err != nil {
		return store.Document{}, s.err
	}
	fields, ok := s.data[collection][id]
	if !ok {
		return store.Document{}, errs.ErrNotFound
	}
	return store.Document{ID: id, Fields: copyFields(fields)}, nil
}

// Add stores a new document under a fresh UUID and returns it as stored.
func (s *Store) Add(_ context.Context, collection string, fields store.Fields) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Add++
	if s.err != nil {
		return store.Document{}, s.err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return store.Document{}, err
	}
	resolved := store.ResolveWriteFields(fields, s.now())
	s.collection(collection)[id.String()] = resolved
	return store.Document{ID: id.String(), Fields: copyFields(resolved)}, nil
}

// Update merges fields into an existing document and returns the result.
func (s *Store) Update(_ context.Context, collection, id string, fields store.Fields) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Update++
	if s.err != nil {
		return store.Document{}, s.err
	}
	current, ok := s.data[collection][id]
	if !ok {
		return store.Document{}, errs.ErrNotFound
	}
	for k, v := range store.ResolveWriteFields(fields, s.now()) {
		current[k] = v
	}
	return store.Document{ID: id, Fields: copyFields(current)}, nil
}

// Delete removes a document or returns errs.ErrNotFound.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls.Delete++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[collection][id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.data[collection], id)
	return nil
}

func (s *Store) collection(name string) map[string]store.Fields {
	c, ok := s.data[name]
	if !ok {
		c = make(map[string]store.Fields)
		s.data[name] = c
	}
	return c
}

func copyFields(fields store.Fields) store.Fields {
	out := make(store.Fields, len(fields))
	for k, v := range fields {
		if m, ok := v.(map[string]any); ok {
			nested := make(map[string]any, len(m))
			for mk, mv := range m {
				nested[mk] = mv
			}
			out[k] = nested
			continue
		}
		out[k] = v
	}
	return out
}
