package entry

import "errors"

var (
	// ErrInvalidEntry signals an entry with missing identity or display fields.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrInvalidCategory signals a category outside the database's declared set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidLevels signals a complexity-level tuple that is not exactly 1..5 in order.
	ErrInvalidLevels = errors.New("invalid complexity levels")
	// ErrDuplicateID signals two entries stored under the same key.
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrKeyMismatch signals an entry stored under a key different from its id.
	ErrKeyMismatch = errors.New("entry id does not match key")
)
