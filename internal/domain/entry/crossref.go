package entry

import "slices"

// ContentType classifies educational content and names cross-reference targets.
type ContentType string

// Content types.
const (
	TypeStructure ContentType = "structure"
	TypeSystem    ContentType = "system"
	TypePathway   ContentType = "pathway"
	TypeProcess   ContentType = "process"
	TypeCondition ContentType = "condition"
	TypeConcept   ContentType = "concept"
	TypeTopic     ContentType = "topic"
)

var contentTypes = []ContentType{
	TypeStructure, TypeSystem, TypePathway, TypeProcess, TypeCondition, TypeConcept, TypeTopic,
}

// ContentTypes returns every content type in declaration order.
func ContentTypes() []ContentType { return slices.Clone(contentTypes) }

// IsValid reports whether t is a declared content type.
func (t ContentType) IsValid() bool { return slices.Contains(contentTypes, t) }

// Relationship labels the direction or kind of a cross-reference.
type Relationship string

// Relationships.
const (
	RelationParent  Relationship = "parent"
	RelationChild   Relationship = "child"
	RelationSibling Relationship = "sibling"
	RelationRelated Relationship = "related"
	RelationSeeAlso Relationship = "see-also"
)

// IsValid reports whether r is a declared relationship.
func (r Relationship) IsValid() bool {
	switch r {
	case RelationParent, RelationChild, RelationSibling, RelationRelated, RelationSeeAlso:
		return true
	}
	return false
}

// CrossReference is a weak, directed edge to an entry that may live in another
// database. TargetID is never checked for existence.
type CrossReference struct {
	TargetID     string       `json:"target_id" yaml:"target_id"`
	TargetType   ContentType  `json:"target_type" yaml:"target_type"`
	Relationship Relationship `json:"relationship" yaml:"relationship"`
	Label        string       `json:"label" yaml:"label"`
}
