package entry

import "fmt"

// LevelCount is the number of complexity tiers every leveled entry carries.
const LevelCount = 5

// Level is a complexity tier, 1 (lay reader) through 5 (clinician).
type Level int

// Complexity levels in ascending order.
const (
	LevelLay Level = iota + 1
	LevelHighSchool
	LevelCollege
	LevelGraduate
	LevelProfessional
)

var defaultLabels = [LevelCount]string{
	"8th Grade",
	"High School",
	"College",
	"Graduate",
	"MD/Professional",
}

// IsValid reports whether l is one of the five defined levels.
func (l Level) IsValid() bool {
	return l >= LevelLay && l <= LevelProfessional
}

// DefaultLabel returns the audience label used when content does not name one.
// Returns "" for invalid levels.
func (l Level) DefaultLabel() string {
	if !l.IsValid() {
		return ""
	}
	return defaultLabels[l-1]
}

// AllLevels returns the five levels in ascending order.
func AllLevels() [LevelCount]Level {
	return [LevelCount]Level{LevelLay, LevelHighSchool, LevelCollege, LevelGraduate, LevelProfessional}
}

// Tier is one element of a five-level tuple.
type Tier interface {
	TierLevel() Level
}

// ComplexityLevel is the flat tier shape: one description per level.
type ComplexityLevel struct {
	Level       Level  `json:"level" yaml:"level"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// TierLevel returns the tier's level number.
func (c ComplexityLevel) TierLevel() Level { return c.Level }

// ValidateTiers checks that position i holds level i+1.
func ValidateTiers[T Tier](tiers [LevelCount]T) error {
	for i, t := range tiers {
		if want := Level(i + 1); t.TierLevel() != want {
			return fmt.Errorf("%w: position %d holds level %d, want %d",
				ErrInvalidLevels, i+1, t.TierLevel(), want)
		}
	}
	return nil
}
