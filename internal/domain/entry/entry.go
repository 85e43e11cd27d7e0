// Package entry defines the contract shared by every content database:
// identity, bilingual names, a closed category, the optional five-level
// tuple and advisory cross-references.
package entry

import (
	"fmt"
	"strings"
)

// Entry is the minimal shape the repository and query layer work against.
type Entry interface {
	// EntryID is the stable identifier the entry is stored under.
	EntryID() string
	// EntryCategory is the string form of the entry's category enum value.
	EntryCategory() string
	// SearchFields lists the raw text fields free-text search matches against.
	SearchFields() []string
	// Validate checks structural invariants (names, category, levels).
	Validate() error
}

// Leveled is an Entry carrying a five-tier complexity tuple.
type Leveled[T Tier] interface {
	Entry
	Tiers() [LevelCount]T
}

// Referencing is an Entry that carries outgoing cross-references.
type Referencing interface {
	Entry
	References() []CrossReference
}

// Header holds the identity fields every entry variant shares.
type Header struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	NameEs             string `json:"name_es" yaml:"name_es"`
	ClassificationCode string `json:"classification_code,omitempty" yaml:"classification_code,omitempty"`
}

// EntryID returns the entry identifier.
func (h Header) EntryID() string { return h.ID }

// Check validates the identity fields. ClassificationCode is opaque and never checked.
func (h Header) Check() error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidEntry, h.ID)
	}
	if strings.TrimSpace(h.NameEs) == "" {
		return fmt.Errorf("%w: %s: name_es is required", ErrInvalidEntry, h.ID)
	}
	return nil
}
