package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint means the store rejected the write: uniqueness,
	// foreign key, or not-null violation.
	ErrConstraint = errors.New("constraint violation")
)

// translate converts gorm errors into the repository's sentinel errors.
// The driver message stays attached so handlers can pass it through.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return err
	}
}
