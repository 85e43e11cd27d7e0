package pregnancy

import (
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

func TestCondition_Validate(t *testing.T) {
	c := Condition{
		Header:   entry.Header{ID: "preeclampsia", Name: "Preeclampsia", NameEs: "Preeclampsia"},
		Category: Hypertensive,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Category = "cardiac"
	if err := c.Validate(); !errors.Is(err, entry.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestRiskIndex_Match(t *testing.T) {
	x := NewRiskIndex([]Condition{
		{Header: entry.Header{ID: "gdm"}, RiskFactors: []string{"Obesity (BMI > 30)", "Advanced maternal age"}},
		{Header: entry.Header{ID: "preeclampsia"}, RiskFactors: []string{"Chronic hypertension", "Obesity"}},
		{Header: entry.Header{ID: "no-factors"}},
	})

	tests := []struct {
		rf   string
		want []string
	}{
		{"obesity", []string{"gdm", "preeclampsia"}},
		{"MATERNAL AGE", []string{"gdm"}},
		{"smoking", []string{}},
		{"", []string{"gdm", "preeclampsia"}},
	}
	for _, tt := range tests {
		t.Run(tt.rf, func(t *testing.T) {
			got := x.Match(tt.rf)
			ids := make([]string, len(got))
			for i, c := range got {
				ids[i] = c.ID
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.rf, ids, tt.want)
			}
		})
	}
}

func TestRiskIndex_MatchReturnsClones(t *testing.T) {
	source := []Condition{{Header: entry.Header{ID: "gdm"}, RiskFactors: []string{"Obesity"}}}
	x := NewRiskIndex(source)

	source[0].RiskFactors[0] = "changed after indexing"
	got := x.Match("obesity")
	if len(got) != 1 {
		t.Fatalf("index must not share the caller's slice, got %d matches", len(got))
	}
	got[0].RiskFactors[0] = "MUTATED"
	if again := x.Match("obesity"); len(again) != 1 || again[0].RiskFactors[0] != "Obesity" {
		t.Errorf("mutating a match leaked into the index: %v", again)
	}
}

func TestCondition_Clone(t *testing.T) {
	c := Condition{
		RiskFactors:    []string{"Obesity"},
		Symptoms:       []string{"Headache"},
		Diagnostics:    []string{"OGTT"},
		EmergencySigns: []string{"Seizure"},
	}
	cp := c.Clone()
	cp.RiskFactors[0] = "x"
	cp.Symptoms[0] = "x"
	cp.Diagnostics[0] = "x"
	cp.EmergencySigns[0] = "x"
	if c.RiskFactors[0] != "Obesity" || c.Symptoms[0] != "Headache" ||
		c.Diagnostics[0] != "OGTT" || c.EmergencySigns[0] != "Seizure" {
		t.Errorf("Clone shares slices with the original: %+v", c)
	}
}

func TestCategories(t *testing.T) {
	if n := len(Categories()); n != 7 {
		t.Fatalf("Categories() len = %d, want 7", n)
	}
}
