package medcontent

import (
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/usecase/query"
)

// Catalog is an untyped view of one database, for callers that pick the
// database at run time.
type Catalog interface {
	Name() DatabaseName
	Leveled() bool
	Get(id string) (Entry, bool)
	Search(q string) []Entry
	FilterByCategory(category string) []Entry
	Count() int
	IDs() []string
	CategoryStats() []CategoryCount
	// AtLevel returns one tier of an entry. It reports false for databases
	// without levels.
	AtLevel(id string, level Level) (any, bool)
}

type catalogView[E entry.Entry] struct {
	svc  *query.Service[E]
	tier func(id string, level Level) (any, bool)
}

func newCatalogView[E entry.Entry](svc *query.Service[E]) *catalogView[E] {
	return &catalogView[E]{svc: svc}
}

func newLeveledCatalogView[E entry.Leveled[T], T entry.Tier](l *query.Leveled[E, T]) *catalogView[E] {
	return &catalogView[E]{
		svc: l.Service,
		tier: func(id string, level Level) (any, bool) {
			t, ok := l.AtLevel(id, level)
			if !ok {
				return nil, false
			}
			return t, true
		},
	}
}

func (v *catalogView[E]) Name() DatabaseName { return DatabaseName(v.svc.Name()) }

func (v *catalogView[E]) Leveled() bool { return v.Name().Leveled() }

func (v *catalogView[E]) Get(id string) (Entry, bool) { return v.svc.Lookup(id) }

func (v *catalogView[E]) Search(q string) []Entry { return widen(v.svc.Search(q)) }

func (v *catalogView[E]) FilterByCategory(category string) []Entry {
	return widen(v.svc.FilterByCategory(category))
}

func (v *catalogView[E]) Count() int { return v.svc.Count() }

func (v *catalogView[E]) IDs() []string { return v.svc.IDs() }

func (v *catalogView[E]) CategoryStats() []CategoryCount { return v.svc.CategoryStats() }

func (v *catalogView[E]) AtLevel(id string, level Level) (any, bool) {
	if !v.Leveled() || v.tier == nil {
		return nil, false
	}
	return v.tier(id, level)
}

func widen[E entry.Entry](in []E) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}
