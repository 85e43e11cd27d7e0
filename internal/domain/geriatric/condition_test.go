package geriatric

import (
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

func validCondition() Condition {
	c := Condition{
		Header:       entry.Header{ID: "sarcopenia", Name: "Sarcopenia", NameEs: "Sarcopenia"},
		Category:     Musculoskeletal,
		Presentation: "Progressive loss of muscle mass",
		Treatment:    "Resistance training",
		Prognosis:    "Raises the risk of falls",
	}
	for i, l := range entry.AllLevels() {
		c.ComplexityLevels[i] = entry.ComplexityLevel{Level: l, Label: l.DefaultLabel(), Description: "level text"}
	}
	return c
}

func TestCondition_Validate(t *testing.T) {
	if err := validCondition().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Condition)
		wantErr error
	}{
		{"missing name", func(c *Condition) { c.Name = "" }, entry.ErrInvalidEntry},
		{"unknown category", func(c *Condition) { c.Category = "cardiac" }, entry.ErrInvalidCategory},
		{"level out of place", func(c *Condition) { c.ComplexityLevels[3].Level = 5 }, entry.ErrInvalidLevels},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCondition()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCondition_SearchFields(t *testing.T) {
	fields := validCondition().SearchFields()
	for _, want := range []string{"Sarcopenia", "musculoskeletal", "Raises the risk of falls"} {
		if !slices.Contains(fields, want) {
			t.Errorf("SearchFields() missing %q", want)
		}
	}
}

func TestCondition_Tiers(t *testing.T) {
	c := validCondition()
	tiers := c.Tiers()
	if tiers[0].Level != entry.LevelLay || tiers[4].Level != entry.LevelProfessional {
		t.Errorf("Tiers() = %v, want levels 1..5", tiers)
	}
	if c.EntryCategory() != "musculoskeletal" {
		t.Errorf("EntryCategory() = %q, want musculoskeletal", c.EntryCategory())
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("Categories() len = %d, want 9", len(cats))
	}
	for _, c := range cats {
		if !c.IsValid() {
			t.Errorf("%q should be valid", c)
		}
	}
	cats[0] = "mutated"
	if Categories()[0] != Syndrome {
		t.Error("Categories() must return a copy")
	}
}
