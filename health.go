package medcontent

import (
	"context"

	"github.com/kailas-cloud/medcontent/internal/domain"
	"github.com/kailas-cloud/medcontent/internal/usecase/health"
)

// HealthReport is the outcome of Library.Check.
type HealthReport = health.Report

// Health statuses and check results.
const (
	HealthOK       = health.Healthy
	HealthDegraded = health.Degraded
	HealthError    = health.Unhealthy
)

// Check verifies catalog integrity: every loaded database has entries, every
// navigation id exists, and cross-references resolve. Dangling references
// only warn.
func (l *Library) Check(ctx context.Context) HealthReport {
	return health.New(healthCatalog{l}, l, l).Check(ctx)
}

type healthCatalog struct{ l *Library }

func (h healthCatalog) Databases() []domain.Database { return h.l.Databases() }

func (h healthCatalog) Count(db domain.Database) int {
	c, ok := h.l.Catalog(db)
	if !ok {
		return 0
	}
	return c.Count()
}

func (h healthCatalog) Contains(db domain.Database, id string) bool {
	_, ok := h.l.Lookup(db, id)
	return ok
}
