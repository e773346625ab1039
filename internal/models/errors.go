package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrConstraint         = errors.New("constraint violation")
	ErrInvalidNationality = errors.New("invalid nationality")
)

// ConstraintKind classifies a storage constraint violation.
type ConstraintKind string

const (
	UniqueViolation     ConstraintKind = "unique"
	ForeignKeyViolation ConstraintKind = "foreign_key"
	NotNullViolation    ConstraintKind = "not_null"
	CheckViolation      ConstraintKind = "check"
)

// ConstraintError reports a uniqueness, foreign-key, not-null or check violation
// raised by storage. The driver error stays reachable through Unwrap.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Table      string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s constraint %q violated on %s: %v", e.Kind, e.Constraint, e.Table, e.Err)
	}
	return fmt.Sprintf("%s constraint violated on %s: %v", e.Kind, e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConstraint) match any constraint violation.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

// IsUniqueViolation reports whether err carries a uniqueness violation.
func IsUniqueViolation(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == UniqueViolation
}

// IsForeignKeyViolation reports whether err carries a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == ForeignKeyViolation
}
