package query

import "github.com/kailas-cloud/medcontent/internal/domain/entry"

// Repository is the read contract the query layer needs from a store.
type Repository[E entry.Entry] interface {
	Name() string
	Get(id string) (E, bool)
	All() []E
	Len() int
}
