package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresRaceRepository implements RaceRepository for PostgreSQL. Races are
// always read bare; their results are fetched through RaceResultRepository.
type PostgresRaceRepository struct {
	db *database.DB
}

// NewPostgresRaceRepository creates a new race repository
func NewPostgresRaceRepository(db *database.DB) RaceRepository {
	return &PostgresRaceRepository{db: db}
}

// FindByID retrieves a race by ID
func (r *PostgresRaceRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Race, error) {
	if err := rel.check("race"); err != nil {
		return nil, err
	}
	race, err := selectByID[models.Race](ctx, r.db.GetPool(), racesTable, id)
	if err != nil {
		return nil, wrapError("get race", err)
	}
	return race, nil
}

// FindAll retrieves every race
func (r *PostgresRaceRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Race, error) {
	if err := rel.check("race"); err != nil {
		return nil, err
	}
	races, err := selectWhere[models.Race](ctx, r.db.GetPool(), racesTable, "")
	if err != nil {
		return nil, wrapError("query races", err)
	}
	return races, nil
}

// FindByIDs retrieves the races that exist among ids
func (r *PostgresRaceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Race, error) {
	if err := rel.check("race"); err != nil {
		return nil, err
	}
	races, err := selectByIDs[models.Race](ctx, r.db.GetPool(), racesTable, ids)
	if err != nil {
		return nil, wrapError("query races by ids", err)
	}
	return races, nil
}

// Save inserts a new race or overwrites an existing one. Embedded results
// are not written here.
func (r *PostgresRaceRepository) Save(ctx context.Context, race *models.Race) (*models.Race, error) {
	id, err := upsert(ctx, r.db.GetPool(), racesTable, race.ID, race.Name)
	if err != nil {
		return nil, wrapError("save race", err)
	}
	race.ID = id
	return race, nil
}

// Delete deletes a race
func (r *PostgresRaceRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), racesTable, id)
	if err != nil {
		return outcome, wrapError("delete race", err)
	}
	return outcome, nil
}
