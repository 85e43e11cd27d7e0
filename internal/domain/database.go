package domain

import (
	"fmt"
	"slices"
)

// Database names one content database of the catalog.
type Database string

// Catalog databases.
const (
	Geriatric  Database = "geriatric"
	Ophthalmic Database = "ophthalmic"
	Pregnancy  Database = "pregnancy"
	Urology    Database = "urology"
	Physiology Database = "physiology"
)

var databases = []Database{Geriatric, Ophthalmic, Pregnancy, Urology, Physiology}

// AllDatabases returns every database in catalog order.
func AllDatabases() []Database { return slices.Clone(databases) }

// IsValid reports whether d is a catalog database.
func (d Database) IsValid() bool { return slices.Contains(databases, d) }

// ParseDatabase validates a database name.
func ParseDatabase(s string) (Database, error) {
	d := Database(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDatabase, s)
	}
	return d, nil
}

// Leveled reports whether entries of d carry the five-level tuple.
func (d Database) Leveled() bool {
	return d == Geriatric || d == Urology || d == Physiology
}
