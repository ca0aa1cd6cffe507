package catalog

import (
	"errors"
	"sync"

	"ArtisanCatalog/internal/snapshot"
)

// Record is anything a Collection can hold.
type Record interface {
	RecordID() string
}

// Collection is an in-memory ordered record store mirrored to a snapshot
// file. Records keep insertion order; updates replace in place, never
// reorder. Every mutation rewrites the whole snapshot before returning, so a
// failed save surfaces to the caller with memory already mutated (no
// rollback). The mutex keeps individual operations coherent; across
// operations the last save still wins.
type Collection[T Record] struct {
	mu   sync.Mutex
	path string
	recs []T
}

// OpenCollection loads the snapshot at path, or seeds it when none exists
// yet. The seed is persisted immediately so later boots see the same data.
func OpenCollection[T Record](path string, seed []T) (*Collection[T], error) {
	recs, err := snapshot.Load[T](path)
	if errors.Is(err, snapshot.ErrNotFound) {
		recs = append([]T(nil), seed...)
		if err := snapshot.Save(path, recs); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &Collection[T]{path: path, recs: recs}, nil
}

// List returns the records in insertion order. The slice is a copy.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.recs...)
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recs)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.recs {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends rec and persists the collection.
func (c *Collection[T]) Insert(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recs = append(c.recs, rec)
	if err := c.save(); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update replaces the record with the given id by apply(existing), keeping
// its position. Returns false when the id is unknown.
func (c *Collection[T]) Update(id string, apply func(T) T) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rec := range c.recs {
		if rec.RecordID() != id {
			continue
		}
		next := apply(rec)
		c.recs[i] = next
		if err := c.save(); err != nil {
			return next, true, err
		}
		return next, true, nil
	}
	var zero T
	return zero, false, nil
}

// Delete removes the record with the given id and persists the collection.
// The removed record is returned so callers can release resources it owned.
func (c *Collection[T]) Delete(id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, rec := range c.recs {
		if rec.RecordID() != id {
			continue
		}
		c.recs = append(c.recs[:i], c.recs[i+1:]...)
		if err := c.save(); err != nil {
			return rec, true, err
		}
		return rec, true, nil
	}
	var zero T
	return zero, false, nil
}

func (c *Collection[T]) save() error {
	return snapshot.Save(c.path, c.recs)
}
