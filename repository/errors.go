package repository

import (
	"errors"
	"fmt"

	"github.com/studieren/blogly/gormtool"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrIntegrityViolation is returned when the store rejects a write on a
	// unique or foreign key constraint.
	ErrIntegrityViolation = errors.New("integrity violation")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// storeError maps driver and gorm errors onto the repository error kinds.
// Errors that already carry a kind pass through unchanged.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrIntegrityViolation):
		return err
	case gormtool.IsNotFound(err):
		return ErrNotFound
	case gormtool.IsDuplicateKey(err), gormtool.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %v", op, ErrIntegrityViolation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
