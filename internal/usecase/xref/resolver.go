// Package xref resolves cross-reference edges against the loaded databases.
// Edges are advisory: nothing here is enforced at load time, and an edge
// whose target is missing is reported rather than rejected.
package xref

import "github.com/kailas-cloud/medcontent/internal/domain/entry"

// Lookup finds an entry by id in one database.
type Lookup interface {
	Name() string
	Lookup(id string) (entry.Entry, bool)
}

// Binding routes a target content type to the databases that may hold it.
// Lookups are tried in order; the first hit wins.
type Binding struct {
	Type    entry.ContentType
	Lookups []Lookup
}

// Target is a resolved edge endpoint.
type Target struct {
	Database string      `json:"database" yaml:"database"`
	Entry    entry.Entry `json:"-" yaml:"-"`
}

// Edge is one cross-reference together with its resolution.
type Edge struct {
	SourceDatabase string               `json:"source_database" yaml:"source_database"`
	SourceID       string               `json:"source_id" yaml:"source_id"`
	Reference      entry.CrossReference `json:"reference" yaml:"reference"`
	Target         *Target              `json:"target,omitempty" yaml:"target,omitempty"`
}

// Resolved reports whether the edge target was found.
func (e Edge) Resolved() bool { return e.Target != nil }

// Origin is a database whose entries carry cross-references.
type Origin struct {
	Database string
	Entries  []entry.Referencing
}

// Resolver maps cross-references to entries. It is immutable after New.
type Resolver struct {
	bindings map[entry.ContentType][]Lookup
}

// New creates a resolver. Bindings for the same type are concatenated in
// argument order.
func New(bindings ...Binding) *Resolver {
	r := &Resolver{bindings: make(map[entry.ContentType][]Lookup, len(bindings))}
	for _, b := range bindings {
		r.bindings[b.Type] = append(r.bindings[b.Type], b.Lookups...)
	}
	return r
}

// Resolve finds the entry ref points to. Unbound target types never resolve.
func (r *Resolver) Resolve(ref entry.CrossReference) (Target, bool) {
	for _, l := range r.bindings[ref.TargetType] {
		if e, ok := l.Lookup(ref.TargetID); ok {
			return Target{Database: l.Name(), Entry: e}, true
		}
	}
	return Target{}, false
}

// Outgoing pairs each edge of source with its resolution, in declaration order.
func (r *Resolver) Outgoing(database string, source entry.Referencing) []Edge {
	refs := source.References()
	edges := make([]Edge, 0, len(refs))
	for _, ref := range refs {
		edge := Edge{SourceDatabase: database, SourceID: source.EntryID(), Reference: ref}
		if t, ok := r.Resolve(ref); ok {
			edge.Target = &t
		}
		edges = append(edges, edge)
	}
	return edges
}

// Edges lists every edge of every origin.
func (r *Resolver) Edges(origins ...Origin) []Edge {
	out := []Edge{}
	for _, o := range origins {
		for _, e := range o.Entries {
			out = append(out, r.Outgoing(o.Database, e)...)
		}
	}
	return out
}

// Dangling lists every edge whose target cannot be resolved.
func (r *Resolver) Dangling(origins ...Origin) []Edge {
	out := []Edge{}
	for _, e := range r.Edges(origins...) {
		if !e.Resolved() {
			out = append(out, e)
		}
	}
	return out
}
