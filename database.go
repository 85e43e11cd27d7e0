package medcontent

import (
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/domain/pregnancy"
	"github.com/kailas-cloud/medcontent/internal/usecase/query"
)

// Database is the query surface of one content database. E is the entry type
// and C its category enum.
type Database[E entry.Entry, C ~string] struct {
	svc *query.Service[E]
}

func newDatabase[E entry.Entry, C ~string](svc *query.Service[E]) *Database[E, C] {
	return &Database[E, C]{svc: svc}
}

// Name returns the database name.
func (d *Database[E, C]) Name() DatabaseName { return DatabaseName(d.svc.Name()) }

// GetByID returns the entry with the given id.
func (d *Database[E, C]) GetByID(id string) (E, bool) { return d.svc.GetByID(id) }

// Search returns entries whose searchable fields contain q, ignoring case.
// An empty q returns every entry.
func (d *Database[E, C]) Search(q string) []E { return d.svc.Search(q) }

// FilterByCategory returns entries of exactly the given category.
func (d *Database[E, C]) FilterByCategory(category C) []E {
	return d.svc.FilterByCategory(string(category))
}

// Count returns the number of entries.
func (d *Database[E, C]) Count() int { return d.svc.Count() }

// IDs returns every id in declaration order.
func (d *Database[E, C]) IDs() []string { return d.svc.IDs() }

// All returns every entry in declaration order.
func (d *Database[E, C]) All() []E { return d.svc.List() }

// Categories returns the categories in use, in first-seen order.
func (d *Database[E, C]) Categories() []C {
	names := d.svc.Categories()
	out := make([]C, len(names))
	for i, n := range names {
		out[i] = C(n)
	}
	return out
}

// CategoryStats counts entries per category, in first-seen order.
func (d *Database[E, C]) CategoryStats() []CategoryCount { return d.svc.CategoryStats() }

// LeveledDatabase is a Database whose entries carry five complexity tiers of type T.
type LeveledDatabase[E entry.Leveled[T], C ~string, T entry.Tier] struct {
	*Database[E, C]
	leveled *query.Leveled[E, T]
}

func newLeveledDatabase[E entry.Leveled[T], C ~string, T entry.Tier](l *query.Leveled[E, T]) *LeveledDatabase[E, C, T] {
	return &LeveledDatabase[E, C, T]{Database: newDatabase[E, C](l.Service), leveled: l}
}

// AtLevel returns one tier of an entry. An unknown id and a level outside
// 1..5 both report false.
func (d *LeveledDatabase[E, C, T]) AtLevel(id string, level Level) (T, bool) {
	return d.leveled.AtLevel(id, level)
}

// Levels returns all five tiers of an entry.
func (d *LeveledDatabase[E, C, T]) Levels(id string) ([entry.LevelCount]T, bool) {
	return d.leveled.Levels(id)
}

// GeriatricDatabase serves geriatric conditions.
type GeriatricDatabase = LeveledDatabase[GeriatricCondition, GeriatricCategory, ComplexityLevel]

// OphthalmicDatabase serves ophthalmic conditions.
type OphthalmicDatabase = Database[OphthalmicCondition, OphthalmicCategory]

// TopicDatabase serves rich educational content such as urology and physiology.
type TopicDatabase = LeveledDatabase[Content, ContentType, LevelContent]

// PregnancyDatabase serves pregnancy conditions.
type PregnancyDatabase struct {
	*Database[PregnancyCondition, PregnancyCategory]
	risk *pregnancy.RiskIndex
}

func newPregnancyDatabase(svc *query.Service[PregnancyCondition]) *PregnancyDatabase {
	return &PregnancyDatabase{
		Database: newDatabase[PregnancyCondition, PregnancyCategory](svc),
		risk:     pregnancy.NewRiskIndex(svc.List()),
	}
}

// ByRiskFactor returns conditions with a risk factor containing rf, ignoring
// case, in declaration order.
func (d *PregnancyDatabase) ByRiskFactor(rf string) []PregnancyCondition {
	return d.risk.Match(rf)
}
