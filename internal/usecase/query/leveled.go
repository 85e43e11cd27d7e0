package query

import "github.com/kailas-cloud/medcontent/internal/domain/entry"

// Leveled adds level access to a Service over entries with a five-tier tuple.
type Leveled[E entry.Leveled[T], T entry.Tier] struct {
	*Service[E]
}

// NewLeveled creates a leveled query service.
func NewLeveled[E entry.Leveled[T], T entry.Tier](repo Repository[E]) *Leveled[E, T] {
	return &Leveled[E, T]{Service: New[E](repo)}
}

// AtLevel returns tier level of the entry stored under id. An unknown id and
// a level outside 1..5 both report false.
func (l *Leveled[E, T]) AtLevel(id string, level entry.Level) (T, bool) {
	var zero T
	if !level.IsValid() {
		return zero, false
	}
	e, ok := l.GetByID(id)
	if !ok {
		return zero, false
	}
	return e.Tiers()[level-1], true
}

// Levels returns the whole tuple of the entry stored under id.
func (l *Leveled[E, T]) Levels(id string) ([entry.LevelCount]T, bool) {
	e, ok := l.GetByID(id)
	if !ok {
		return [entry.LevelCount]T{}, false
	}
	return e.Tiers(), true
}
