package health

import (
	"context"
	"fmt"
	"slices"

	"github.com/kailas-cloud/medcontent/internal/domain"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates every check passed or only warned.
	Healthy Status = "ok"
	// Degraded indicates at least one failing check.
	Degraded Status = "degraded"
	// Unhealthy indicates no database is loaded.
	Unhealthy Status = "error"
)

// CheckResult represents an individual check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing check.
	CheckOK CheckResult = "ok"
	// CheckWarn indicates findings that do not degrade the catalog.
	CheckWarn CheckResult = "warn"
	// CheckError indicates a failing check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckDatabases       = "databases"
	CheckNavigation      = "navigation"
	CheckCrossReferences = "cross_references"
)

// Report aggregates check results.
type Report struct {
	Status   Status                 `json:"status" yaml:"status"`
	Checks   map[string]CheckResult `json:"checks" yaml:"checks"`
	Problems []string               `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Service coordinates catalog integrity checks.
type Service struct {
	catalog Catalog
	indexes IndexLister
	refs    ReferenceChecker
}

// New creates a Service. indexes and refs can be nil.
func New(catalog Catalog, indexes IndexLister, refs ReferenceChecker) *Service {
	return &Service{catalog: catalog, indexes: indexes, refs: refs}
}

// Check runs every check against the loaded catalog.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Checks: make(map[string]CheckResult)}

	loaded := s.catalog.Databases()
	r.Checks[CheckDatabases] = CheckOK
	for _, db := range loaded {
		if s.catalog.Count(db) == 0 {
			r.Checks[CheckDatabases] = CheckError
			r.Problems = append(r.Problems, fmt.Sprintf("database %s is empty", db))
		}
	}

	if s.indexes != nil && ctx.Err() == nil {
		r.Checks[CheckNavigation] = s.checkNavigation(loaded, &r.Problems)
	}

	if s.refs != nil && ctx.Err() == nil {
		r.Checks[CheckCrossReferences] = CheckOK
		for _, e := range s.refs.Dangling() {
			r.Checks[CheckCrossReferences] = CheckWarn
			r.Problems = append(r.Problems, fmt.Sprintf("%s/%s references missing %s %s",
				e.SourceDatabase, e.SourceID, e.Reference.TargetType, e.Reference.TargetID))
		}
	}

	r.Status = Healthy
	for _, v := range r.Checks {
		if v == CheckError {
			r.Status = Degraded
			break
		}
	}
	if len(loaded) == 0 {
		r.Status = Unhealthy
	}
	return r
}

// checkNavigation verifies that every id an index lists exists. Indexes bound
// to a database that is not loaded are skipped; unbound indexes may resolve
// an id in any loaded database.
func (s *Service) checkNavigation(loaded []domain.Database, problems *[]string) CheckResult {
	result := CheckOK
	for _, idx := range s.indexes.Indexes() {
		scope := loaded
		if idx.Database() != "" {
			db := domain.Database(idx.Database())
			if !slices.Contains(loaded, db) {
				continue
			}
			scope = []domain.Database{db}
		}
		for _, g := range idx.Groups() {
			for _, id := range g.IDs {
				if slices.ContainsFunc(scope, func(db domain.Database) bool { return s.catalog.Contains(db, id) }) {
					continue
				}
				result = CheckError
				*problems = append(*problems, fmt.Sprintf("index %s category %s lists unknown id %s", idx.Name(), g.Key, id))
			}
		}
	}
	return result
}
