package services

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds surfaced to the HTTP layer. Handlers classify with errors.Is;
// anything else is reported as an opaque persistence failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoAvailableTable  = errors.New("no available table")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// translateNotFound maps the persistence layer's record-not-found onto the
// service error taxonomy.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
