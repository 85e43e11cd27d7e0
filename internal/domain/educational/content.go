// Package educational holds the rich leveled content schema used by topic
// databases (urology, physiology). Each of the five levels carries a summary,
// a long-form explanation and teaching aids; entries link to other content
// through advisory cross-references.
package educational

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// Status is the editorial state of a content entry.
type Status string

// Editorial states.
const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

// IsValid reports whether s is a declared status.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusReview || s == StatusPublished
}

// ClinicalRelevance ranks how often content matters in practice.
type ClinicalRelevance string

// Clinical relevance ranks.
const (
	RelevanceLow      ClinicalRelevance = "low"
	RelevanceMedium   ClinicalRelevance = "medium"
	RelevanceHigh     ClinicalRelevance = "high"
	RelevanceCritical ClinicalRelevance = "critical"
)

// KeyTerm is a glossary item attached to one level.
type KeyTerm struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// LevelContent is one tier of a rich entry.
type LevelContent struct {
	Level                   entry.Level `json:"level" yaml:"level"`
	Label                   string      `json:"label" yaml:"label"`
	Summary                 string      `json:"summary" yaml:"summary"`
	Explanation             string      `json:"explanation" yaml:"explanation"`
	KeyTerms                []KeyTerm   `json:"key_terms,omitempty" yaml:"key_terms,omitempty"`
	Analogies               []string    `json:"analogies,omitempty" yaml:"analogies,omitempty"`
	Examples                []string    `json:"examples,omitempty" yaml:"examples,omitempty"`
	ClinicalNotes           string      `json:"clinical_notes,omitempty" yaml:"clinical_notes,omitempty"`
	PatientCounselingPoints []string    `json:"patient_counseling_points,omitempty" yaml:"patient_counseling_points,omitempty"`
}

// TierLevel returns the tier's level number.
func (l LevelContent) TierLevel() entry.Level { return l.Level }

// Clone returns a deep copy of l.
func (l LevelContent) Clone() LevelContent {
	l.KeyTerms = slices.Clone(l.KeyTerms)
	l.Analogies = slices.Clone(l.Analogies)
	l.Examples = slices.Clone(l.Examples)
	l.PatientCounselingPoints = slices.Clone(l.PatientCounselingPoints)
	return l
}

// ExamRelevance flags which board exams cover the content.
type ExamRelevance struct {
	USMLE bool     `json:"usmle" yaml:"usmle"`
	NBME  bool     `json:"nbme,omitempty" yaml:"nbme,omitempty"`
	Shelf []string `json:"shelf,omitempty" yaml:"shelf,omitempty"`
}

// Tags is the taxonomy attached to a rich entry.
type Tags struct {
	Systems           []string          `json:"systems,omitempty" yaml:"systems,omitempty"`
	Topics            []string          `json:"topics,omitempty" yaml:"topics,omitempty"`
	Keywords          []string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	ClinicalRelevance ClinicalRelevance `json:"clinical_relevance,omitempty" yaml:"clinical_relevance,omitempty"`
	ExamRelevance     ExamRelevance     `json:"exam_relevance" yaml:"exam_relevance"`
}

// Content is one rich educational entry. Its category is the content type.
type Content struct {
	entry.Header    `yaml:",inline"`
	Category        entry.ContentType              `json:"category" yaml:"category"`
	AlternateNames  []string                       `json:"alternate_names,omitempty" yaml:"alternate_names,omitempty"`
	Status          Status                         `json:"status" yaml:"status"`
	Version         int                            `json:"version" yaml:"version"`
	Levels          [entry.LevelCount]LevelContent `json:"levels" yaml:"levels"`
	CrossReferences []entry.CrossReference         `json:"cross_references,omitempty" yaml:"cross_references,omitempty"`
	Tags            Tags                           `json:"tags" yaml:"tags"`
}

// EntryCategory returns the content type as a string.
func (c Content) EntryCategory() string { return string(c.Category) }

// Tiers returns the level tuple.
func (c Content) Tiers() [entry.LevelCount]LevelContent { return c.Levels }

// Clone returns a deep copy of c, levels and tags included.
func (c Content) Clone() Content {
	c.AlternateNames = slices.Clone(c.AlternateNames)
	c.CrossReferences = slices.Clone(c.CrossReferences)
	for i := range c.Levels {
		c.Levels[i] = c.Levels[i].Clone()
	}
	c.Tags.Systems = slices.Clone(c.Tags.Systems)
	c.Tags.Topics = slices.Clone(c.Tags.Topics)
	c.Tags.Keywords = slices.Clone(c.Tags.Keywords)
	c.Tags.ExamRelevance.Shelf = slices.Clone(c.Tags.ExamRelevance.Shelf)
	return c
}

// References returns a copy of the outgoing cross-references.
func (c Content) References() []entry.CrossReference { return slices.Clone(c.CrossReferences) }

// SearchFields returns names, content type, alternate names and every level summary.
func (c Content) SearchFields() []string {
	fields := make([]string, 0, 3+len(c.AlternateNames)+entry.LevelCount)
	fields = append(fields, c.Name, c.NameEs, string(c.Category))
	fields = append(fields, c.AlternateNames...)
	for _, l := range c.Levels {
		fields = append(fields, l.Summary)
	}
	return fields
}

// Validate checks names, content type, status and the level tuple.
// Cross-references are advisory and left unchecked.
func (c Content) Validate() error {
	if err := c.Check(); err != nil {
		return err
	}
	if !c.Category.IsValid() {
		return fmt.Errorf("%w: %s: content type %q", entry.ErrInvalidCategory, c.ID, c.Category)
	}
	if c.Status != "" && !c.Status.IsValid() {
		return fmt.Errorf("%w: %s: status %q", entry.ErrInvalidEntry, c.ID, c.Status)
	}
	if err := entry.ValidateTiers(c.Levels); err != nil {
		return fmt.Errorf("%s: %w", c.ID, err)
	}
	return nil
}
