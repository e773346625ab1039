package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/paddock/internal/models"
)

func TestWrapErrorMapsConstraintViolations(t *testing.T) {
	tests := []struct {
		code string
		kind models.ConstraintKind
	}{
		{code: "23505", kind: models.UniqueViolation},
		{code: "23503", kind: models.ForeignKeyViolation},
		{code: "23502", kind: models.NotNullViolation},
		{code: "23514", kind: models.CheckViolation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           tt.code,
				TableName:      "race_results",
				ConstraintName: "unique_car_race_driver",
			}

			err := wrapError("save race result", pgErr)

			var ce *models.ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, "race_results", ce.Table)
			assert.Equal(t, "unique_car_race_driver", ce.Constraint)
			assert.ErrorIs(t, err, models.ErrConstraint)
			assert.Contains(t, err.Error(), "failed to save race result")

			var cause *pgconn.PgError
			assert.ErrorAs(t, err, &cause, "driver error stays reachable")
		})
	}
}

func TestWrapErrorPassesOtherFaultsThrough(t *testing.T) {
	cause := errors.New("connection reset")

	err := wrapError("get car", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, models.ErrConstraint)
	assert.EqualError(t, err, "failed to get car: connection reset")

	err = wrapError("get car", &pgconn.PgError{Code: "40001"})
	assert.NotErrorIs(t, err, models.ErrConstraint)

	assert.NoError(t, wrapError("get car", nil))
}

func TestUniqueViolationHelpers(t *testing.T) {
	err := wrapError("save", &pgconn.PgError{Code: "23505"})
	assert.True(t, models.IsUniqueViolation(err))
	assert.False(t, models.IsForeignKeyViolation(err))
}
