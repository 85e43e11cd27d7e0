// Package query implements the read-only query layer over one content
// database: lookup by id, free-text search, category filtering and counts.
// Every method is a pure read and safe for concurrent use.
package query

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// CategoryCount is the number of entries in one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Service answers queries against one repository.
type Service[E entry.Entry] struct {
	repo    Repository[E]
	entries []E
	folded  [][]string
}

// New creates a query service. Search fields are case-folded once here.
func New[E entry.Entry](repo Repository[E]) *Service[E] {
	entries := repo.All()
	folded := make([][]string, len(entries))
	for i, e := range entries {
		fields := e.SearchFields()
		folded[i] = make([]string, len(fields))
		for j, f := range fields {
			folded[i][j] = entry.Fold(f)
		}
	}
	return &Service[E]{repo: repo, entries: entries, folded: folded}
}

// Name returns the database name.
func (s *Service[E]) Name() string { return s.repo.Name() }

// GetByID returns the entry stored under id.
func (s *Service[E]) GetByID(id string) (E, bool) {
	return s.repo.Get(id)
}

// Lookup is GetByID without the concrete type, for cross-database resolution.
func (s *Service[E]) Lookup(id string) (entry.Entry, bool) {
	e, ok := s.repo.Get(id)
	if !ok {
		return nil, false
	}
	return e, true
}

// Search returns entries whose searchable fields contain query, ignoring case,
// in declaration order. An empty query returns every entry.
func (s *Service[E]) Search(query string) []E {
	if query == "" {
		return s.List()
	}
	q := entry.Fold(query)
	out := []E{}
	for i, fields := range s.folded {
		if slices.ContainsFunc(fields, func(f string) bool { return strings.Contains(f, q) }) {
			out = append(out, entry.Clone(s.entries[i]))
		}
	}
	return out
}

// FilterByCategory returns entries whose category equals category exactly.
func (s *Service[E]) FilterByCategory(category string) []E {
	return s.Where(func(e E) bool { return e.EntryCategory() == category })
}

// Where returns entries satisfying pred in declaration order. pred sees the
// stored entries and must not modify them; results are copies.
func (s *Service[E]) Where(pred func(E) bool) []E {
	out := []E{}
	for _, e := range s.entries {
		if pred(e) {
			out = append(out, entry.Clone(e))
		}
	}
	return out
}

// Count returns the number of entries.
func (s *Service[E]) Count() int { return s.repo.Len() }

// List returns copies of every entry in declaration order.
func (s *Service[E]) List() []E {
	out := make([]E, len(s.entries))
	for i, e := range s.entries {
		out[i] = entry.Clone(e)
	}
	return out
}

// IDs returns every id in declaration order.
func (s *Service[E]) IDs() []string {
	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.EntryID()
	}
	return ids
}

// Categories returns the distinct categories in use, in first-seen order.
func (s *Service[E]) Categories() []string {
	stats := s.CategoryStats()
	out := make([]string, len(stats))
	for i, c := range stats {
		out[i] = c.Category
	}
	return out
}

// CategoryStats counts entries per category, in first-seen order.
func (s *Service[E]) CategoryStats() []CategoryCount {
	out := []CategoryCount{}
	pos := make(map[string]int)
	for _, e := range s.entries {
		c := e.EntryCategory()
		if i, ok := pos[c]; ok {
			out[i].Count++
			continue
		}
		pos[c] = len(out)
		out = append(out, CategoryCount{Category: c, Count: 1})
	}
	return out
}
