package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing entry.
	ErrNotFound = errors.New("not found")
	// ErrUnknownDatabase signals a database name outside the catalog.
	ErrUnknownDatabase = errors.New("unknown database")
	// ErrUnknownIndex signals a navigation index that was not loaded.
	ErrUnknownIndex = errors.New("unknown navigation index")
	// ErrInvalidLevel signals a level number outside 1..5.
	ErrInvalidLevel = errors.New("invalid level")
)

// NotFoundError wraps ErrNotFound with the database and id that missed.
type NotFoundError struct {
	Database Database
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s/%s", ErrNotFound.Error(), e.Database, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound creates a not-found error for id in db.
func NewNotFound(db Database, id string) error {
	return &NotFoundError{Database: db, ID: id}
}
