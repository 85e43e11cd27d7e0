package query

import (
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// tier is a minimal entry.Tier.
type tier struct {
	level entry.Level
	text  string
}

func (t tier) TierLevel() entry.Level { return t.level }

// stubEntry implements entry.Leveled[tier].
type stubEntry struct {
	id       string
	category string
	fields   []string
	tiers    [entry.LevelCount]tier
}

func (s stubEntry) EntryID() string               { return s.id }
func (s stubEntry) EntryCategory() string         { return s.category }
func (s stubEntry) SearchFields() []string        { return s.fields }
func (s stubEntry) Validate() error               { return nil }
func (s stubEntry) Tiers() [entry.LevelCount]tier { return s.tiers }

func (s stubEntry) Clone() stubEntry {
	s.fields = slices.Clone(s.fields)
	return s
}

func newStub(id, category string, fields ...string) stubEntry {
	s := stubEntry{id: id, category: category, fields: append([]string{id}, fields...)}
	for i, l := range entry.AllLevels() {
		s.tiers[i] = tier{level: l, text: id + "@" + l.DefaultLabel()}
	}
	return s
}

// mockRepo implements Repository over a fixed slice.
type mockRepo struct {
	name     string
	entries  []stubEntry
	getCalls int
}

func (m *mockRepo) Name() string { return m.name }

func (m *mockRepo) Get(id string) (stubEntry, bool) {
	m.getCalls++
	for _, e := range m.entries {
		if e.id == id {
			return e, true
		}
	}
	return stubEntry{}, false
}

func (m *mockRepo) All() []stubEntry {
	out := make([]stubEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *mockRepo) Len() int { return len(m.entries) }

func newTestRepo() *mockRepo {
	return &mockRepo{
		name: "test",
		entries: []stubEntry{
			newStub("frailty-syndrome", "syndrome", "Frailty Syndrome", "predicts falls and hospitalization"),
			newStub("sarcopenia", "musculoskeletal", "Sarcopenia", "loss of muscle"),
			newStub("falls-prevention", "injury-prevention", "Falls Prevention", "Prevención de caídas"),
			newStub("delirium", "neuropsychiatric", "Delirium", "ACUTE confusion"),
			newStub("osteoporosis", "musculoskeletal", "Osteoporosis"),
		},
	}
}
