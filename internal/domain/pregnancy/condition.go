// Package pregnancy holds the pregnancy and obstetric condition schema.
package pregnancy

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// Category groups pregnancy conditions by phase or mechanism.
type Category string

// Pregnancy categories.
const (
	GestationalMetabolic Category = "gestational-metabolic"
	Hypertensive         Category = "hypertensive"
	Placental            Category = "placental"
	Preterm              Category = "preterm"
	Postpartum           Category = "postpartum"
	EarlyPregnancy       Category = "early-pregnancy"
	Fetal                Category = "fetal"
)

var categories = []Category{
	GestationalMetabolic, Hypertensive, Placental, Preterm, Postpartum, EarlyPregnancy, Fetal,
}

// Categories returns every pregnancy category in declaration order.
func Categories() []Category { return slices.Clone(categories) }

// IsValid reports whether c is a declared pregnancy category.
func (c Category) IsValid() bool { return slices.Contains(categories, c) }

// Condition is one pregnancy-specific condition.
type Condition struct {
	entry.Header       `yaml:",inline"`
	Category           Category `json:"category" yaml:"category"`
	Description        string   `json:"description" yaml:"description"`
	RiskFactors        []string `json:"risk_factors" yaml:"risk_factors"`
	Pathophysiology    string   `json:"pathophysiology" yaml:"pathophysiology"`
	Symptoms           []string `json:"symptoms" yaml:"symptoms"`
	Diagnostics        []string `json:"diagnostics" yaml:"diagnostics"`
	Treatment          string   `json:"treatment" yaml:"treatment"`
	Lifestyle          string   `json:"lifestyle" yaml:"lifestyle"`
	EmergencySigns     []string `json:"emergency_signs" yaml:"emergency_signs"`
	PatientExplanation string   `json:"patient_explanation" yaml:"patient_explanation"`
}

// EntryCategory returns the category as a string.
func (c Condition) EntryCategory() string { return string(c.Category) }

// SearchFields returns the fields free-text search covers.
func (c Condition) SearchFields() []string {
	return []string{
		c.Name, c.NameEs, string(c.Category), c.Description,
		c.Pathophysiology, c.Treatment, c.PatientExplanation,
	}
}

// Clone returns a deep copy of c.
func (c Condition) Clone() Condition {
	c.RiskFactors = slices.Clone(c.RiskFactors)
	c.Symptoms = slices.Clone(c.Symptoms)
	c.Diagnostics = slices.Clone(c.Diagnostics)
	c.EmergencySigns = slices.Clone(c.EmergencySigns)
	return c
}

// Validate checks names and category.
func (c Condition) Validate() error {
	if err := c.Check(); err != nil {
		return err
	}
	if !c.Category.IsValid() {
		return fmt.Errorf("%w: %s: pregnancy category %q", entry.ErrInvalidCategory, c.ID, c.Category)
	}
	return nil
}
