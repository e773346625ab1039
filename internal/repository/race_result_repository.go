package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresRaceResultRepository implements RaceResultRepository for PostgreSQL
type PostgresRaceResultRepository struct {
	db *database.DB
}

// NewPostgresRaceResultRepository creates a new race result repository
func NewPostgresRaceResultRepository(db *database.DB) RaceResultRepository {
	return &PostgresRaceResultRepository{db: db}
}

// FindByID retrieves a race result by ID with the requested relations
func (r *PostgresRaceResultRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.RaceResult, error) {
	if err := rel.check("raceResult"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	result, err := selectByID[models.RaceResult](ctx, pool, raceResultsTable, id)
	if err != nil {
		return nil, wrapError("get race result", err)
	}
	if result == nil {
		return nil, nil
	}

	if err := (loader{q: pool}).raceResults(ctx, []*models.RaceResult{result}, rel); err != nil {
		return nil, wrapError("get race result", err)
	}
	return result, nil
}

// FindAll retrieves every race result
func (r *PostgresRaceResultRepository) FindAll(ctx context.Context, rel Relations) ([]*models.RaceResult, error) {
	return r.find(ctx, "query race results", rel, "")
}

// FindByIDs retrieves the race results that exist among ids
func (r *PostgresRaceResultRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.RaceResult, error) {
	if len(ids) == 0 {
		return []*models.RaceResult{}, rel.check("raceResult")
	}
	return r.find(ctx, "query race results by ids", rel, "id = ANY($1)", ids)
}

// FindByQuery retrieves the results matching every set foreign key. It backs
// the per-race, per-car and per-driver result listings.
func (r *PostgresRaceResultRepository) FindByQuery(ctx context.Context, query models.RaceResultQuery, rel Relations) ([]*models.RaceResult, error) {
	where, args := raceResultQueryClause(query)
	return r.find(ctx, "query race results by query", rel, where, args...)
}

func raceResultQueryClause(query models.RaceResultQuery) (string, []any) {
	var f filter
	if query.Race != nil {
		f.add("race_id = ?", *query.Race)
	}
	if query.Car != nil {
		f.add("car_id = ?", *query.Car)
	}
	if query.Driver != nil {
		f.add("driver_id = ?", *query.Driver)
	}
	return f.where(), f.args
}

func (r *PostgresRaceResultRepository) find(ctx context.Context, action string, rel Relations, where string, args ...any) ([]*models.RaceResult, error) {
	if err := rel.check("raceResult"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	results, err := selectWhere[models.RaceResult](ctx, pool, raceResultsTable, where, args...)
	if err != nil {
		return nil, wrapError(action, err)
	}
	if err := (loader{q: pool}).raceResults(ctx, results, rel); err != nil {
		return nil, wrapError(action, err)
	}
	return results, nil
}

// Save inserts a new race result or overwrites an existing one. A second
// result for the same car, race and driver fails with a unique violation.
func (r *PostgresRaceResultRepository) Save(ctx context.Context, result *models.RaceResult) (*models.RaceResult, error) {
	id, err := upsert(ctx, r.db.GetPool(), raceResultsTable, result.ID,
		result.RaceID, result.CarID, result.DriverID, result.ClassID,
		result.RaceNumber, result.StartPosition, result.FinishPosition)
	if err != nil {
		return nil, wrapError("save race result", err)
	}
	result.ID = id
	return result, nil
}

// Delete deletes a race result
func (r *PostgresRaceResultRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), raceResultsTable, id)
	if err != nil {
		return outcome, wrapError("delete race result", err)
	}
	return outcome, nil
}
