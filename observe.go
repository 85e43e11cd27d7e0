package medcontent

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/medcontent/internal/metrics"
)

// observe logs a load summary and sets the catalog gauges. m may be nil.
func (l *Library) observe(logger *zap.Logger, m *metrics.Catalog, dur time.Duration) {
	total := 0
	for _, db := range l.loaded {
		c := l.catalogs[db]
		stats := c.CategoryStats()
		total += c.Count()
		m.ObserveDatabase(string(db), c.Count(), len(stats))
		logger.Debug("database ready",
			zap.String("database", string(db)),
			zap.Int("entries", c.Count()),
			zap.Int("categories", len(stats)),
		)
	}

	resolved := make(map[string]int)
	dangling := make(map[string]int)
	for _, e := range l.Edges() {
		if e.Resolved() {
			resolved[e.SourceDatabase]++
		} else {
			dangling[e.SourceDatabase]++
		}
	}
	for _, db := range []DatabaseName{Urology, Physiology} {
		m.ObserveCrossReferences(string(db), resolved[string(db)], dangling[string(db)])
		if n := dangling[string(db)]; n > 0 {
			logger.Warn("unresolved cross-references",
				zap.String("database", string(db)),
				zap.Int("dangling", n),
			)
		}
	}

	for _, idx := range l.indexes {
		m.ObserveNavigation(idx.Name(), idx.Len())
	}
	m.ObserveLoad(dur)

	logger.Info("catalog loaded",
		zap.Int("databases", len(l.loaded)),
		zap.Int("entries", total),
		zap.Int("navigation_indexes", len(l.indexes)),
		zap.Duration("duration", dur),
	)
}
