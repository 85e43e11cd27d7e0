// Package metrics exposes catalog load metrics for Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cross-reference status label values.
const (
	StatusResolved = "resolved"
	StatusDangling = "dangling"
)

// Catalog holds the gauges describing a loaded catalog.
// A nil *Catalog is valid and records nothing.
type Catalog struct {
	entries         *prometheus.GaugeVec
	categories      *prometheus.GaugeVec
	crossReferences *prometheus.GaugeVec
	navigationIDs   *prometheus.GaugeVec
	loadDuration    prometheus.Gauge
}

// NewCatalog creates the catalog gauges and registers them on reg.
// Collectors already registered under the same names are reused.
func NewCatalog(reg prometheus.Registerer) (*Catalog, error) {
	m := &Catalog{
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "medcontent",
			Subsystem: "catalog",
			Name:      "entries",
			Help:      "Entries loaded per database.",
		}, []string{"database"}),
		categories: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "medcontent",
			Subsystem: "catalog",
			Name:      "categories",
			Help:      "Distinct categories in use per database.",
		}, []string{"database"}),
		crossReferences: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "medcontent",
			Subsystem: "catalog",
			Name:      "cross_references",
			Help:      "Cross-reference edges per source database and resolution status.",
		}, []string{"database", "status"}),
		navigationIDs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "medcontent",
			Subsystem: "catalog",
			Name:      "navigation_ids",
			Help:      "Id listings per navigation index, duplicates included.",
		}, []string{"index"}),
		loadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "medcontent",
			Subsystem: "catalog",
			Name:      "load_duration_seconds",
			Help:      "Time spent loading and validating the catalog.",
		}),
	}
	if err := registerOrReuse(reg, &m.entries); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.categories); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.crossReferences); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.navigationIDs); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.loadDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("medcontent: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("medcontent: register metric: %w", err)
	}
	return nil
}

// ObserveDatabase records entry and category counts for one database.
func (m *Catalog) ObserveDatabase(database string, entries, categories int) {
	if m == nil {
		return
	}
	m.entries.WithLabelValues(database).Set(float64(entries))
	m.categories.WithLabelValues(database).Set(float64(categories))
}

// ObserveCrossReferences records edge counts for one source database.
func (m *Catalog) ObserveCrossReferences(database string, resolved, dangling int) {
	if m == nil {
		return
	}
	m.crossReferences.WithLabelValues(database, StatusResolved).Set(float64(resolved))
	m.crossReferences.WithLabelValues(database, StatusDangling).Set(float64(dangling))
}

// ObserveNavigation records the listing count of one navigation index.
func (m *Catalog) ObserveNavigation(index string, ids int) {
	if m == nil {
		return
	}
	m.navigationIDs.WithLabelValues(index).Set(float64(ids))
}

// ObserveLoad records how long loading took.
func (m *Catalog) ObserveLoad(d time.Duration) {
	if m == nil {
		return
	}
	m.loadDuration.Set(d.Seconds())
}
