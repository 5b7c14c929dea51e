// Package cache provides the in-memory read-through caches used by the
// repositories: a per-id single-entity cache and a per-owner list cache.
// Both are safe for concurrent use; both are correctness-optional — callers
// must behave identically on hit and miss, and an invalidated entry is
// never served again until repopulated.
//
// There is no eviction and no expiry: an entry stays valid until a write or
// delete through the owning repository invalidates it. Acceptable for a
// small personal dataset, a known scalability limit beyond that.
package cache

import "sync"

// Owned pairs a cached value with the id of the user owning it, so a hit
// for the wrong owner can be rejected without a remote round trip leaking
// another user's data.
type Owned[T any] struct {
	OwnerID string
	Value   T
}

// EntityCache maps id -> last-known value.
type EntityCache[T any] struct {
	mu sync.RWMutex
	m  map[string]T
}

// NewEntityCache creates an empty entity cache.
func NewEntityCache[T any]() *EntityCache[T] {
	return &EntityCache[T]{m: make(map[string]T)}
}

// Get returns the cached value for id, if any.
func (c *EntityCache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[id]
	return v, ok
}

// Put stores or replaces the value for id.
func (c *EntityCache[T]) Put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[id] = v
}

// Remove invalidates the entry for id.
func (c *EntityCache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, id)
}

// ListCache maps ownerID -> the most recently fetched full collection for
// that owner. The id function extracts an entity's id for AppendOrReplace
// and Remove matching.
type ListCache[T any] struct {
	mu sync.RWMutex
	m  map[string][]T
	id func(T) string
}

// NewListCache creates an empty list cache with the given id extractor.
func NewListCache[T any](id func(T) string) *ListCache[T] {
	return &ListCache[T]{m: make(map[string][]T), id: id}
}

// Get returns a copy of the cached collection for ownerID, if any.
func (c *ListCache[T]) Get(ownerID string) ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.m[ownerID]
	if !ok {
		return nil, false
	}
	out := make([]T, len(list))
	copy(out, list)
	return out, true
}

// Put stores a copy of list as the full collection for ownerID.
func (c *ListCache[T]) Put(ownerID string, list []T) {
	stored := make([]T, len(list))
	copy(stored, list)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[ownerID] = stored
}

// Invalidate drops the cached collection for ownerID.
func (c *ListCache[T]) Invalidate(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, ownerID)
}

// AppendOrReplace keeps an already-cached collection consistent after a
// successful add or update without a full re-fetch: replace on matching id,
// append otherwise. No-op when the owner has no cached collection — there
// is nothing to keep consistent then.
func (c *ListCache[T]) AppendOrReplace(ownerID string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.m[ownerID]
	if !ok {
		return
	}
	id := c.id(v)
	for i := range list {
		if c.id(list[i]) == id {
			list[i] = v
			return
		}
	}
	c.m[ownerID] = append(list, v)
}

// Remove drops the entity with the given id from the owner's cached
// collection, if both are present.
func (c *ListCache[T]) Remove(ownerID, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.m[ownerID]
	if !ok {
		return
	}
	for i := range list {
		if c.id(list[i]) == id {
			c.m[ownerID] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}
