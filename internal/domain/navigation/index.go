// Package navigation holds the aggregation indexes that group entry ids under
// display categories. An id may appear under more than one category.
package navigation

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidIndex is returned when an index or one of its groups is malformed.
var ErrInvalidIndex = errors.New("invalid navigation index")

// Group is one category key and the ids listed under it, in declaration order.
type Group struct {
	Key string   `json:"key" yaml:"key"`
	IDs []string `json:"ids" yaml:"ids"`
}

// Index maps category keys to id lists. It is immutable after New.
type Index struct {
	name     string
	label    string
	database string
	groups   []Group
	owner    map[string]string
	all      []string
}

// New builds an index. Group keys must be unique and non-empty; ids must be
// non-empty. The same id may appear in several groups; CategoryFor reports the
// first one declared.
func New(name, label, database string, groups []Group) (*Index, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidIndex)
	}
	idx := &Index{
		name:     name,
		label:    label,
		database: database,
		groups:   make([]Group, 0, len(groups)),
		owner:    make(map[string]string),
		all:      []string{},
	}
	seenKeys := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			return nil, fmt.Errorf("%w: %s: empty category key", ErrInvalidIndex, name)
		}
		if _, dup := seenKeys[g.Key]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate category %q", ErrInvalidIndex, name, g.Key)
		}
		seenKeys[g.Key] = struct{}{}
		for _, id := range g.IDs {
			if id == "" {
				return nil, fmt.Errorf("%w: %s/%s: empty id", ErrInvalidIndex, name, g.Key)
			}
			if _, ok := idx.owner[id]; !ok {
				idx.owner[id] = g.Key
			}
			idx.all = append(idx.all, id)
		}
		idx.groups = append(idx.groups, Group{Key: g.Key, IDs: slices.Clone(g.IDs)})
	}
	return idx, nil
}

// Name returns the index name.
func (i *Index) Name() string { return i.name }

// Label returns the display label.
func (i *Index) Label() string { return i.label }

// Database returns the database the index covers, or "" for a mixed index.
func (i *Index) Database() string { return i.database }

// AllIDs flattens every category in declaration order. An id listed under
// several categories appears once per listing.
func (i *Index) AllIDs() []string { return slices.Clone(i.all) }

// CategoryFor returns the first category whose list contains id.
func (i *Index) CategoryFor(id string) (string, bool) {
	key, ok := i.owner[id]
	return key, ok
}

// Categories returns the category keys in declaration order.
func (i *Index) Categories() []string {
	keys := make([]string, 0, len(i.groups))
	for _, g := range i.groups {
		keys = append(keys, g.Key)
	}
	return keys
}

// IDsIn returns the ids listed under key.
func (i *Index) IDsIn(key string) ([]string, bool) {
	for _, g := range i.groups {
		if g.Key == key {
			return slices.Clone(g.IDs), true
		}
	}
	return []string{}, false
}

// Len returns the number of listings across all categories, duplicates included.
func (i *Index) Len() int { return len(i.all) }

// Groups returns a copy of every group.
func (i *Index) Groups() []Group {
	out := make([]Group, 0, len(i.groups))
	for _, g := range i.groups {
		out = append(out, Group{Key: g.Key, IDs: slices.Clone(g.IDs)})
	}
	return out
}
