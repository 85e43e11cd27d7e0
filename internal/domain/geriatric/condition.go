// Package geriatric holds the geriatric condition schema.
package geriatric

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// Category groups geriatric conditions.
type Category string

// Geriatric categories.
const (
	Syndrome         Category = "syndrome"
	Musculoskeletal  Category = "musculoskeletal"
	Neuropsychiatric Category = "neuropsychiatric"
	Pharmacologic    Category = "pharmacologic"
	InjuryPrevention Category = "injury-prevention"
	Integumentary    Category = "integumentary"
	Genitourinary    Category = "genitourinary"
	Nutritional      Category = "nutritional"
	Psychosocial     Category = "psychosocial"
)

var categories = []Category{
	Syndrome, Musculoskeletal, Neuropsychiatric, Pharmacologic, InjuryPrevention,
	Integumentary, Genitourinary, Nutritional, Psychosocial,
}

// Categories returns every geriatric category in declaration order.
func Categories() []Category { return slices.Clone(categories) }

// IsValid reports whether c is a declared geriatric category.
func (c Category) IsValid() bool { return slices.Contains(categories, c) }

// Condition is one geriatric condition with a five-level explanation tuple.
type Condition struct {
	entry.Header     `yaml:",inline"`
	Category         Category `json:"category" yaml:"category"`
	Prevalence       string   `json:"prevalence" yaml:"prevalence"`
	Presentation     string   `json:"presentation" yaml:"presentation"`
	Diagnosis        string   `json:"diagnosis" yaml:"diagnosis"`
	Treatment        string   `json:"treatment" yaml:"treatment"`
	Prevention       string   `json:"prevention" yaml:"prevention"`
	Prognosis        string   `json:"prognosis" yaml:"prognosis"`
	KeyConsideration string   `json:"key_consideration" yaml:"key_consideration"`

	ComplexityLevels [entry.LevelCount]entry.ComplexityLevel `json:"complexity_levels" yaml:"complexity_levels"`
}

// EntryCategory returns the category as a string.
func (c Condition) EntryCategory() string { return string(c.Category) }

// Tiers returns the complexity-level tuple.
func (c Condition) Tiers() [entry.LevelCount]entry.ComplexityLevel { return c.ComplexityLevels }

// SearchFields returns the fields free-text search covers. Prognosis is
// included on purpose: "fall" must find frailty-syndrome, whose prognosis
// mentions falls.
func (c Condition) SearchFields() []string {
	return []string{c.Name, c.NameEs, string(c.Category), c.Presentation, c.Treatment, c.Prognosis}
}

// Validate checks names, category and the level tuple.
func (c Condition) Validate() error {
	if err := c.Check(); err != nil {
		return err
	}
	if !c.Category.IsValid() {
		return fmt.Errorf("%w: %s: geriatric category %q", entry.ErrInvalidCategory, c.ID, c.Category)
	}
	if err := entry.ValidateTiers(c.ComplexityLevels); err != nil {
		return fmt.Errorf("%s: %w", c.ID, err)
	}
	return nil
}
