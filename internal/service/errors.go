package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/models"
)

// RowError is the failure of one row in a race result batch.
type RowError struct {
	Index int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// BatchError reports the rows of a race result batch that failed. Rows not
// listed were persisted and stay persisted.
type BatchError struct {
	RaceID    uuid.UUID
	Persisted int
	Failures  []RowError
}

func (e *BatchError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("race %s: %d of %d race results failed: %s",
		e.RaceID, len(e.Failures), e.Persisted+len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes every row failure to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// failureReason classifies err for metrics labels.
func failureReason(err error) string {
	var ce *models.ConstraintError
	if errors.As(err, &ce) {
		return string(ce.Kind)
	}
	return "storage"
}
