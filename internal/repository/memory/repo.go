// Package memory is the in-memory keyed store backing each content database.
package memory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// Record is one keyed entry as declared in a database source.
type Record[E entry.Entry] struct {
	Key   string
	Entry E
}

// Repository is an immutable id-keyed store that remembers declaration order.
type Repository[E entry.Entry] struct {
	name  string
	byID  map[string]E
	order []string
}

// New validates records and builds a repository. Every record key must equal
// its entry id, ids must be unique, and every entry must pass Validate.
// All failures are collected and returned together.
func New[E entry.Entry](name string, records []Record[E]) (*Repository[E], error) {
	r := &Repository[E]{
		name:  name,
		byID:  make(map[string]E, len(records)),
		order: make([]string, 0, len(records)),
	}
	var errs []error
	for i, rec := range records {
		id := rec.Entry.EntryID()
		if rec.Key != id {
			errs = append(errs, fmt.Errorf("%s[%d]: %w: key %q holds id %q",
				name, i, entry.ErrKeyMismatch, rec.Key, id))
			continue
		}
		if err := rec.Entry.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", name, i, err))
			continue
		}
		if _, dup := r.byID[id]; dup {
			errs = append(errs, fmt.Errorf("%s[%d]: %w: %s", name, i, entry.ErrDuplicateID, id))
			continue
		}
		r.byID[id] = rec.Entry
		r.order = append(r.order, id)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Empty returns a repository holding no entries.
func Empty[E entry.Entry](name string) *Repository[E] {
	return &Repository[E]{name: name, byID: map[string]E{}, order: []string{}}
}

// Name returns the database name.
func (r *Repository[E]) Name() string { return r.name }

// Get returns a copy of the entry stored under id. Entries implementing
// entry.Cloner are deep-copied.
func (r *Repository[E]) Get(id string) (E, bool) {
	e, ok := r.byID[id]
	if !ok {
		return e, false
	}
	return entry.Clone(e), true
}

// All returns copies of every entry in declaration order.
func (r *Repository[E]) All() []E {
	out := make([]E, len(r.order))
	for i, id := range r.order {
		out[i] = entry.Clone(r.byID[id])
	}
	return out
}

// IDs returns every id in declaration order.
func (r *Repository[E]) IDs() []string { return slices.Clone(r.order) }

// Len returns the number of entries.
func (r *Repository[E]) Len() int { return len(r.order) }
