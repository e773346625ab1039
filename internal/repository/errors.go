package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourusername/paddock/internal/models"
)

// SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// wrapError annotates err with the failed action. Integrity violations are
// converted into *models.ConstraintError; everything else passes through with
// its cause intact.
func wrapError(action string, err error) error {
	if err == nil {
		return nil
	}
	if ce := constraintError(err); ce != nil {
		return fmt.Errorf("failed to %s: %w", action, ce)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func constraintError(err error) *models.ConstraintError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	var kind models.ConstraintKind
	switch pgErr.Code {
	case pgUniqueViolation:
		kind = models.UniqueViolation
	case pgForeignKeyViolation:
		kind = models.ForeignKeyViolation
	case pgNotNullViolation:
		kind = models.NotNullViolation
	case pgCheckViolation:
		kind = models.CheckViolation
	default:
		return nil
	}

	return &models.ConstraintError{
		Kind:       kind,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Err:        pgErr,
	}
}
