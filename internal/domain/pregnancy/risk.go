package pregnancy

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/medcontent/internal/domain/entry"
)

// RiskIndex matches conditions by risk factor. Risk factors are case-folded
// once, when the index is built.
type RiskIndex struct {
	conditions []Condition
	folded     [][]string
}

// NewRiskIndex indexes conditions in the given order.
func NewRiskIndex(conditions []Condition) *RiskIndex {
	x := &RiskIndex{
		conditions: make([]Condition, len(conditions)),
		folded:     make([][]string, len(conditions)),
	}
	for i, c := range conditions {
		x.conditions[i] = c.Clone()
		x.folded[i] = make([]string, len(c.RiskFactors))
		for j, rf := range c.RiskFactors {
			x.folded[i][j] = entry.Fold(rf)
		}
	}
	return x
}

// Match returns the conditions with a risk factor containing riskFactor,
// ignoring case, in index order. An empty riskFactor matches every condition
// that lists at least one risk factor.
func (x *RiskIndex) Match(riskFactor string) []Condition {
	rf := entry.Fold(riskFactor)
	out := []Condition{}
	for i, factors := range x.folded {
		if slices.ContainsFunc(factors, func(f string) bool { return strings.Contains(f, rf) }) {
			out = append(out, x.conditions[i].Clone())
		}
	}
	return out
}
