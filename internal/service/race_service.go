package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/logger"
	"github.com/yourusername/paddock/internal/metrics"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
)

// RaceService writes a race together with its results. The writes are
// separate storage round-trips with no enclosing transaction: a failed
// result leaves the race and every other result persisted.
type RaceService struct {
	races   repository.RaceRepository
	results repository.RaceResultRepository
	audit   *logger.AuditLogger
}

// NewRaceService creates a new race service
func NewRaceService(races repository.RaceRepository, results repository.RaceResultRepository, audit *logger.AuditLogger) *RaceService {
	return &RaceService{
		races:   races,
		results: results,
		audit:   audit,
	}
}

// CreateWithResults persists race, then each of its embedded results stamped
// with the new race id. The returned race is set whenever the race row was
// written, even if some results failed with a *BatchError.
func (s *RaceService) CreateWithResults(ctx context.Context, race *models.Race) (*models.Race, error) {
	embedded := race.RaceResults

	saved, err := s.races.Save(ctx, race)
	if err != nil {
		return nil, err
	}
	s.audit.LogEntitySaved("race", saved.ID.String(), true)
	metrics.RecordEntityWrite("race", "created")

	if len(embedded) == 0 {
		return saved, nil
	}

	persisted, err := s.persistResults(ctx, saved.ID, embedded)
	saved.RaceResults = persisted
	return saved, err
}

// AppendResults attaches results to an existing race. It fails with
// models.ErrNotFound before writing anything when the race does not exist.
func (s *RaceService) AppendResults(ctx context.Context, raceID uuid.UUID, results []*models.RaceResult) ([]*models.RaceResult, error) {
	race, err := s.races.FindByID(ctx, raceID, repository.RaceRelations)
	if err != nil {
		return nil, err
	}
	if race == nil {
		return nil, fmt.Errorf("race %s: %w", raceID, models.ErrNotFound)
	}

	return s.persistResults(ctx, raceID, results)
}

// UpdateResult overwrites a stored result. A result without a race id keeps
// the race it is stored under.
func (s *RaceService) UpdateResult(ctx context.Context, result *models.RaceResult) (*models.RaceResult, error) {
	existing, err := s.results.FindByID(ctx, result.ID, repository.NoRelations)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("race result %s: %w", result.ID, models.ErrNotFound)
	}

	if result.RaceID == uuid.Nil {
		result.RaceID = existing.RaceID
	}

	saved, err := s.results.Save(ctx, result)
	if err != nil {
		return nil, err
	}
	s.audit.LogEntitySaved("race_result", saved.ID.String(), false)
	metrics.RecordEntityWrite("race_result", "updated")
	return saved, nil
}

// persistResults saves each result in input order as an independent insert.
// Every row is attempted; the failed ones are collected into a *BatchError.
func (s *RaceService) persistResults(ctx context.Context, raceID uuid.UUID, results []*models.RaceResult) ([]*models.RaceResult, error) {
	persisted := make([]*models.RaceResult, 0, len(results))
	var failures []RowError
	var reasons []string

	for i, result := range results {
		result.RaceID = raceID
		saved, err := s.results.Save(ctx, result)
		if err != nil {
			failures = append(failures, RowError{Index: i, Err: err})
			reasons = append(reasons, failureReason(err))
			continue
		}
		persisted = append(persisted, saved)
	}

	s.audit.LogRaceResultsPersisted(raceID.String(), len(persisted), len(failures))
	metrics.RecordRaceResultBatch(len(persisted), reasons)

	if len(failures) > 0 {
		return persisted, &BatchError{RaceID: raceID, Persisted: len(persisted), Failures: failures}
	}
	return persisted, nil
}
