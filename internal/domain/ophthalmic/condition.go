// Package ophthalmic holds the ophthalmic condition schema.
package ophthalmic

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// Category groups eye conditions by anatomy or clinic.
type Category string

// Ophthalmic categories.
const (
	Lens                Category = "lens"
	Glaucoma            Category = "glaucoma"
	Retina              Category = "retina"
	CorneaSurface       Category = "cornea-surface"
	Uvea                Category = "uvea"
	NeuroOphthalmic     Category = "neuro-ophthalmic"
	PediatricStrabismus Category = "pediatric-strabismus"
	Eyelid              Category = "eyelid"
	Refractive          Category = "refractive"
)

var categories = []Category{
	Lens, Glaucoma, Retina, CorneaSurface, Uvea, NeuroOphthalmic, PediatricStrabismus, Eyelid, Refractive,
}

// Categories returns every ophthalmic category in declaration order.
func Categories() []Category { return slices.Clone(categories) }

// IsValid reports whether c is a declared ophthalmic category.
func (c Category) IsValid() bool { return slices.Contains(categories, c) }

// Condition is one ophthalmic condition. It carries no complexity levels.
type Condition struct {
	entry.Header       `yaml:",inline"`
	Category           Category `json:"category" yaml:"category"`
	Description        string   `json:"description" yaml:"description"`
	Pathophysiology    string   `json:"pathophysiology" yaml:"pathophysiology"`
	ClinicalFeatures   []string `json:"clinical_features" yaml:"clinical_features"`
	Diagnostics        []string `json:"diagnostics" yaml:"diagnostics"`
	Treatment          []string `json:"treatment" yaml:"treatment"`
	Complications      []string `json:"complications" yaml:"complications"`
	PatientExplanation string   `json:"patient_explanation" yaml:"patient_explanation"`
	EmergencySigns     []string `json:"emergency_signs" yaml:"emergency_signs"`
}

// EntryCategory returns the category as a string.
func (c Condition) EntryCategory() string { return string(c.Category) }

// Clone returns a deep copy of c.
func (c Condition) Clone() Condition {
	c.ClinicalFeatures = slices.Clone(c.ClinicalFeatures)
	c.Diagnostics = slices.Clone(c.Diagnostics)
	c.Treatment = slices.Clone(c.Treatment)
	c.Complications = slices.Clone(c.Complications)
	c.EmergencySigns = slices.Clone(c.EmergencySigns)
	return c
}

// SearchFields returns the fields free-text search covers.
func (c Condition) SearchFields() []string {
	return []string{c.Name, c.NameEs, string(c.Category), c.Description, c.PatientExplanation}
}

// Validate checks names and category.
func (c Condition) Validate() error {
	if err := c.Check(); err != nil {
		return err
	}
	if !c.Category.IsValid() {
		return fmt.Errorf("%w: %s: ophthalmic category %q", entry.ErrInvalidCategory, c.ID, c.Category)
	}
	return nil
}
