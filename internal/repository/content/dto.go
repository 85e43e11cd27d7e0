package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/medcontent/internal/domain/educational"
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/domain/geriatric"
)

// sourceFile is the envelope of every database file. Entries stays a raw
// node so keys are walked in declaration order.
type sourceFile struct {
	Database string    `yaml:"database"`
	Version  int       `yaml:"version"`
	Entries  yaml.Node `yaml:"entries"`
}

// navigationFile is the envelope of navigation.yaml.
type navigationFile struct {
	Version int       `yaml:"version"`
	Indexes yaml.Node `yaml:"indexes"`
}

type indexRow struct {
	Label      string    `yaml:"label"`
	Database   string    `yaml:"database"`
	Categories yaml.Node `yaml:"categories"`
}

// geriatricRow is the source shape of a geriatric condition. Levels are a
// plain list so a wrong count surfaces as entry.ErrInvalidLevels.
type geriatricRow struct {
	entry.Header     `yaml:",inline"`
	Category         string                  `yaml:"category"`
	Prevalence       string                  `yaml:"prevalence"`
	Presentation     string                  `yaml:"presentation"`
	Diagnosis        string                  `yaml:"diagnosis"`
	Treatment        string                  `yaml:"treatment"`
	Prevention       string                  `yaml:"prevention"`
	Prognosis        string                  `yaml:"prognosis"`
	KeyConsideration string                  `yaml:"key_consideration"`
	ComplexityLevels []entry.ComplexityLevel `yaml:"complexity_levels"`
}

func (r geriatricRow) toDomain() (geriatric.Condition, error) {
	c := geriatric.Condition{
		Header:           r.Header,
		Category:         geriatric.Category(r.Category),
		Prevalence:       r.Prevalence,
		Presentation:     r.Presentation,
		Diagnosis:        r.Diagnosis,
		Treatment:        r.Treatment,
		Prevention:       r.Prevention,
		Prognosis:        r.Prognosis,
		KeyConsideration: r.KeyConsideration,
	}
	levels, err := toTuple(r.ComplexityLevels, func(l entry.ComplexityLevel) entry.ComplexityLevel {
		if l.Label == "" {
			l.Label = l.Level.DefaultLabel()
		}
		return l
	})
	if err != nil {
		return geriatric.Condition{}, fmt.Errorf("%s: %w", c.ID, err)
	}
	c.ComplexityLevels = levels
	return c, nil
}

// contentRow is the source shape of a rich educational entry.
type contentRow struct {
	entry.Header    `yaml:",inline"`
	Category        string                     `yaml:"category"`
	AlternateNames  []string                   `yaml:"alternate_names"`
	Status          string                     `yaml:"status"`
	Version         int                        `yaml:"version"`
	Levels          []educational.LevelContent `yaml:"levels"`
	CrossReferences []entry.CrossReference     `yaml:"cross_references"`
	Tags            educational.Tags           `yaml:"tags"`
}

func (r contentRow) toDomain() (educational.Content, error) {
	c := educational.Content{
		Header:          r.Header,
		Category:        entry.ContentType(r.Category),
		AlternateNames:  r.AlternateNames,
		Status:          educational.Status(r.Status),
		Version:         r.Version,
		CrossReferences: r.CrossReferences,
		Tags:            r.Tags,
	}
	levels, err := toTuple(r.Levels, func(l educational.LevelContent) educational.LevelContent {
		if l.Label == "" {
			l.Label = l.Level.DefaultLabel()
		}
		return l
	})
	if err != nil {
		return educational.Content{}, fmt.Errorf("%s: %w", c.ID, err)
	}
	c.Levels = levels
	return c, nil
}

// toTuple copies exactly entry.LevelCount tiers into an array, applying fill to each.
func toTuple[T any](in []T, fill func(T) T) ([entry.LevelCount]T, error) {
	var out [entry.LevelCount]T
	if len(in) != entry.LevelCount {
		return out, fmt.Errorf("%w: got %d levels, want %d", entry.ErrInvalidLevels, len(in), entry.LevelCount)
	}
	for i, t := range in {
		out[i] = fill(t)
	}
	return out, nil
}
