package medcontent

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/medcontent/internal/domain"
	"github.com/kailas-cloud/medcontent/internal/domain/educational"
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/metrics"
	"github.com/kailas-cloud/medcontent/internal/repository/content"
	"github.com/kailas-cloud/medcontent/internal/repository/memory"
	"github.com/kailas-cloud/medcontent/internal/usecase/query"
	"github.com/kailas-cloud/medcontent/internal/usecase/xref"
)

// Library holds every loaded database, the navigation indexes and the
// cross-reference resolver. It is immutable after Open.
type Library struct {
	geriatric  *GeriatricDatabase
	ophthalmic *OphthalmicDatabase
	pregnancy  *PregnancyDatabase
	urology    *TopicDatabase
	physiology *TopicDatabase

	catalogs map[DatabaseName]Catalog
	loaded   []DatabaseName
	indexes  []*NavigationIndex
	resolver *xref.Resolver
}

// Open loads and validates the catalog. Any malformed entry fails the whole
// call; nothing is partially loaded.
func Open(opts ...Option) (*Library, error) {
	cfg := &libraryConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.fsys == nil {
		cfg.fsys = content.FS()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	for _, db := range cfg.databases {
		if !db.IsValid() {
			return nil, fmt.Errorf("medcontent: %w: %q", domain.ErrUnknownDatabase, db)
		}
	}
	enabled := domain.AllDatabases()
	if len(cfg.databases) > 0 {
		enabled = slices.DeleteFunc(enabled, func(db DatabaseName) bool {
			return !slices.Contains(cfg.databases, db)
		})
	}

	var m *metrics.Catalog
	if cfg.metricsReg != nil {
		var err error
		m, err = metrics.NewCatalog(cfg.metricsReg)
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	loader := content.NewLoader(cfg.fsys, cfg.logger)
	for _, db := range enabled {
		if !loader.Has(db) {
			return nil, fmt.Errorf("medcontent: %w: %s for database %s", content.ErrMissingFile, content.FileName(db), db)
		}
	}

	gerRepo, err := loadOrEmpty(enabled, domain.Geriatric, loader.Geriatric)
	if err != nil {
		return nil, err
	}
	ophRepo, err := loadOrEmpty(enabled, domain.Ophthalmic, loader.Ophthalmic)
	if err != nil {
		return nil, err
	}
	pregRepo, err := loadOrEmpty(enabled, domain.Pregnancy, loader.Pregnancy)
	if err != nil {
		return nil, err
	}
	uroRepo, err := loadOrEmpty(enabled, domain.Urology, loader.Urology)
	if err != nil {
		return nil, err
	}
	physRepo, err := loadOrEmpty(enabled, domain.Physiology, loader.Physiology)
	if err != nil {
		return nil, err
	}
	indexes, err := loader.Navigation()
	if err != nil {
		return nil, fmt.Errorf("medcontent: load navigation: %w", err)
	}

	ger := query.NewLeveled[GeriatricCondition, ComplexityLevel](gerRepo)
	oph := query.New[OphthalmicCondition](ophRepo)
	preg := query.New[PregnancyCondition](pregRepo)
	uro := query.NewLeveled[Content, LevelContent](uroRepo)
	phys := query.NewLeveled[Content, LevelContent](physRepo)

	lib := &Library{
		geriatric:  newLeveledDatabase[GeriatricCondition, GeriatricCategory](ger),
		ophthalmic: newDatabase[OphthalmicCondition, OphthalmicCategory](oph),
		pregnancy:  newPregnancyDatabase(preg),
		urology:    newLeveledDatabase[Content, ContentType](uro),
		physiology: newLeveledDatabase[Content, ContentType](phys),
		catalogs: map[DatabaseName]Catalog{
			domain.Geriatric:  newLeveledCatalogView(ger),
			domain.Ophthalmic: newCatalogView(oph),
			domain.Pregnancy:  newCatalogView(preg),
			domain.Urology:    newLeveledCatalogView(uro),
			domain.Physiology: newLeveledCatalogView(phys),
		},
		loaded:  enabled,
		indexes: indexes,
		resolver: xref.New(
			xref.Binding{Type: entry.TypeCondition, Lookups: []xref.Lookup{uro.Service, phys.Service, ger.Service, oph, preg}},
			xref.Binding{Type: entry.TypeTopic, Lookups: []xref.Lookup{phys.Service, uro.Service}},
			xref.Binding{Type: entry.TypeProcess, Lookups: []xref.Lookup{phys.Service}},
		),
	}

	lib.observe(cfg.logger, m, time.Since(start))
	return lib, nil
}

// loadOrEmpty loads db when enabled and substitutes an empty repository otherwise.
func loadOrEmpty[E entry.Entry](
	enabled []DatabaseName, db DatabaseName, load func() (*memory.Repository[E], error),
) (*memory.Repository[E], error) {
	if !slices.Contains(enabled, db) {
		return memory.Empty[E](string(db)), nil
	}
	repo, err := load()
	if err != nil {
		return nil, fmt.Errorf("medcontent: load %s: %w", db, err)
	}
	return repo, nil
}

// Geriatric returns the geriatric database.
func (l *Library) Geriatric() *GeriatricDatabase { return l.geriatric }

// Ophthalmic returns the ophthalmic database.
func (l *Library) Ophthalmic() *OphthalmicDatabase { return l.ophthalmic }

// Pregnancy returns the pregnancy database.
func (l *Library) Pregnancy() *PregnancyDatabase { return l.pregnancy }

// Urology returns the urology topic database.
func (l *Library) Urology() *TopicDatabase { return l.urology }

// Physiology returns the physiology topic database.
func (l *Library) Physiology() *TopicDatabase { return l.physiology }

// Databases returns the loaded databases in catalog order.
func (l *Library) Databases() []DatabaseName { return slices.Clone(l.loaded) }

// Catalog returns the untyped view of a loaded database.
func (l *Library) Catalog(db DatabaseName) (Catalog, bool) {
	if !slices.Contains(l.loaded, db) {
		return nil, false
	}
	c, ok := l.catalogs[db]
	return c, ok
}

// Lookup finds an entry by id in one database.
func (l *Library) Lookup(db DatabaseName, id string) (Entry, bool) {
	c, ok := l.Catalog(db)
	if !ok {
		return nil, false
	}
	return c.Get(id)
}

// Indexes returns every navigation index in declaration order.
func (l *Library) Indexes() []*NavigationIndex { return slices.Clone(l.indexes) }

// Index returns the navigation index with the given name.
func (l *Library) Index(name string) (*NavigationIndex, bool) {
	for _, idx := range l.indexes {
		if idx.Name() == name {
			return idx, true
		}
	}
	return nil, false
}

// Resolve finds the entry a cross-reference points to.
func (l *Library) Resolve(ref CrossReference) (Target, bool) { return l.resolver.Resolve(ref) }

// Outgoing lists the cross-references of one entry with their resolution.
// It reports false when the entry does not exist; entries without references
// yield an empty list.
func (l *Library) Outgoing(db DatabaseName, id string) ([]Edge, bool) {
	e, ok := l.Lookup(db, id)
	if !ok {
		return nil, false
	}
	ref, ok := e.(entry.Referencing)
	if !ok {
		return []Edge{}, true
	}
	return l.resolver.Outgoing(string(db), ref), true
}

// Edges lists every cross-reference in the loaded databases.
func (l *Library) Edges() []Edge { return l.resolver.Edges(l.origins()...) }

// Dangling lists every cross-reference whose target is not loaded.
func (l *Library) Dangling() []Edge { return l.resolver.Dangling(l.origins()...) }

func (l *Library) origins() []xref.Origin {
	origins := make([]xref.Origin, 0, 2)
	for _, db := range []*TopicDatabase{l.urology, l.physiology} {
		origins = append(origins, xref.Origin{Database: string(db.Name()), Entries: referencing(db.All())})
	}
	return origins
}

func referencing(in []educational.Content) []entry.Referencing {
	out := make([]entry.Referencing, len(in))
	for i, c := range in {
		out[i] = c
	}
	return out
}
