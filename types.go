package medcontent

import (
	"github.com/kailas-cloud/medcontent/internal/domain"
	"github.com/kailas-cloud/medcontent/internal/domain/educational"
	"github.com/kailas-cloud/medcontent/internal/domain/entry"
	"github.com/kailas-cloud/medcontent/internal/domain/geriatric"
	"github.com/kailas-cloud/medcontent/internal/domain/navigation"
	"github.com/kailas-cloud/medcontent/internal/domain/ophthalmic"
	"github.com/kailas-cloud/medcontent/internal/domain/pregnancy"
	"github.com/kailas-cloud/medcontent/internal/usecase/query"
	"github.com/kailas-cloud/medcontent/internal/usecase/xref"
)

// Shared entry types.
type (
	Entry           = entry.Entry
	Level           = entry.Level
	ComplexityLevel = entry.ComplexityLevel
	CrossReference  = entry.CrossReference
	ContentType     = entry.ContentType
	Relationship    = entry.Relationship
	CategoryCount   = query.CategoryCount
)

// Database variants.
type (
	GeriatricCondition  = geriatric.Condition
	GeriatricCategory   = geriatric.Category
	OphthalmicCondition = ophthalmic.Condition
	OphthalmicCategory  = ophthalmic.Category
	PregnancyCondition  = pregnancy.Condition
	PregnancyCategory   = pregnancy.Category
	Content             = educational.Content
	LevelContent        = educational.LevelContent
)

// Catalog-level types.
type (
	DatabaseName    = domain.Database
	NavigationIndex = navigation.Index
	NavigationGroup = navigation.Group
	Edge            = xref.Edge
	Target          = xref.Target
)

// Complexity levels.
const (
	LevelLay          = entry.LevelLay
	LevelHighSchool   = entry.LevelHighSchool
	LevelCollege      = entry.LevelCollege
	LevelGraduate     = entry.LevelGraduate
	LevelProfessional = entry.LevelProfessional
)

// Database names.
const (
	Geriatric  = domain.Geriatric
	Ophthalmic = domain.Ophthalmic
	Pregnancy  = domain.Pregnancy
	Urology    = domain.Urology
	Physiology = domain.Physiology
)

// AllDatabases returns every database name in catalog order.
func AllDatabases() []DatabaseName { return domain.AllDatabases() }

// ParseDatabase validates a database name.
func ParseDatabase(s string) (DatabaseName, error) { return domain.ParseDatabase(s) }
