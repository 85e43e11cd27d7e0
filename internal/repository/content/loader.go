// Package content ingests the catalog's YAML sources into validated
// in-memory repositories and navigation indexes.
package content

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/medcontent/internal/domain"
	"github.com/kailas-cloud/medcontent/internal/domain/educational"
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/domain/geriatric"
	"github.com/kailas-cloud/medcontent/internal/domain/navigation"
	"github.com/kailas-cloud/medcontent/internal/domain/ophthalmic"
	"github.com/kailas-cloud/medcontent/internal/domain/pregnancy"
	"github.com/kailas-cloud/medcontent/internal/repository/memory"
)

// NavigationFile is the file holding the aggregation indexes.
const NavigationFile = "navigation.yaml"

// supportedVersion is the only source format version the loader understands.
const supportedVersion = 1

var (
	// ErrMalformed signals a source file that does not match the expected layout.
	ErrMalformed = errors.New("malformed content")
	// ErrDatabaseMismatch signals a file whose database header names another database.
	ErrDatabaseMismatch = errors.New("database mismatch")
	// ErrMissingFile signals an enabled database without a source file.
	ErrMissingFile = errors.New("content file not found")
)

// Loader reads database files named <database>.yaml from a file system.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewLoader creates a loader over fsys. A nil logger is replaced with a no-op one.
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fsys: fsys, logger: logger}
}

// FileName returns the source file name for db.
func FileName(db domain.Database) string { return string(db) + ".yaml" }

// Has reports whether the source file for db exists.
func (l *Loader) Has(db domain.Database) bool {
	_, err := fs.Stat(l.fsys, FileName(db))
	return err == nil
}

// Geriatric loads the geriatric database.
func (l *Loader) Geriatric() (*memory.Repository[geriatric.Condition], error) {
	return load(l, domain.Geriatric, geriatricRow.toDomain)
}

// Ophthalmic loads the ophthalmic database.
func (l *Loader) Ophthalmic() (*memory.Repository[ophthalmic.Condition], error) {
	return load(l, domain.Ophthalmic, identity[ophthalmic.Condition])
}

// Pregnancy loads the pregnancy database.
func (l *Loader) Pregnancy() (*memory.Repository[pregnancy.Condition], error) {
	return load(l, domain.Pregnancy, identity[pregnancy.Condition])
}

// Urology loads the urology topic database.
func (l *Loader) Urology() (*memory.Repository[educational.Content], error) {
	return load(l, domain.Urology, contentRow.toDomain)
}

// Physiology loads the physiology topic database.
func (l *Loader) Physiology() (*memory.Repository[educational.Content], error) {
	return load(l, domain.Physiology, contentRow.toDomain)
}

// Navigation loads every aggregation index in declaration order.
// A missing navigation file yields no indexes.
func (l *Loader) Navigation() ([]*navigation.Index, error) {
	raw, err := fs.ReadFile(l.fsys, NavigationFile)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no navigation file", zap.String("file", NavigationFile))
		return []*navigation.Index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", NavigationFile, err)
	}

	var f navigationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, NavigationFile, err)
	}
	if f.Version != supportedVersion {
		return nil, fmt.Errorf("%w: %s: unsupported version %d", ErrMalformed, NavigationFile, f.Version)
	}

	var indexes []*navigation.Index
	err = eachPair(&f.Indexes, func(name string, node *yaml.Node) error {
		var row indexRow
		if err := node.Decode(&row); err != nil {
			return err
		}
		var groups []navigation.Group
		err := eachPair(&row.Categories, func(key string, ids *yaml.Node) error {
			g := navigation.Group{Key: key}
			if err := ids.Decode(&g.IDs); err != nil {
				return err
			}
			groups = append(groups, g)
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		idx, err := navigation.New(name, row.Label, row.Database, groups)
		if err != nil {
			return err
		}
		indexes = append(indexes, idx)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NavigationFile, err)
	}

	l.logger.Debug("navigation loaded", zap.Int("indexes", len(indexes)))
	return indexes, nil
}

// load decodes <db>.yaml in declaration order, converts each row with conv and
// builds a validated repository.
func load[R any, E entry.Entry](l *Loader, db domain.Database, conv func(R) (E, error)) (*memory.Repository[E], error) {
	name := FileName(db)
	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var f sourceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	if f.Database != string(db) {
		return nil, fmt.Errorf("%w: %s declares %q", ErrDatabaseMismatch, name, f.Database)
	}
	if f.Version != supportedVersion {
		return nil, fmt.Errorf("%w: %s: unsupported version %d", ErrMalformed, name, f.Version)
	}

	var records []memory.Record[E]
	err = eachPair(&f.Entries, func(key string, node *yaml.Node) error {
		var row R
		if err := node.Decode(&row); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformed, key, err)
		}
		e, err := conv(row)
		if err != nil {
			return err
		}
		records = append(records, memory.Record[E]{Key: key, Entry: e})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	repo, err := memory.New(string(db), records)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("database loaded",
		zap.String("database", string(db)),
		zap.Int("entries", repo.Len()),
	)
	return repo, nil
}

// eachPair walks a mapping node in declaration order.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping at line %d", ErrMalformed, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func identity[E any](e E) (E, error) { return e, nil }
