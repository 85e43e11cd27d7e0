package health

import (
	"github.com/kailas-cloud/medcontent/internal/domain"
	"github.com/kailas-cloud/medcontent/internal/domain/navigation"
	"github.com/kailas-cloud/medcontent/internal/usecase/xref"
)

// Catalog reports what the loaded databases hold.
type Catalog interface {
	Databases() []domain.Database
	Count(db domain.Database) int
	Contains(db domain.Database, id string) bool
}

// IndexLister lists navigation indexes.
type IndexLister interface {
	Indexes() []*navigation.Index
}

// ReferenceChecker lists cross-references whose target is missing.
type ReferenceChecker interface {
	Dangling() []xref.Edge
}
