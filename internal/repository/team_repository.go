package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

const (
	deleteTeamDriversSQL = "DELETE FROM team_drivers WHERE team_id = $1"
	insertTeamDriversSQL = `
		INSERT INTO team_drivers (team_id, driver_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING
	`
)

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	db *database.DB
}

// NewPostgresTeamRepository creates a new team repository
func NewPostgresTeamRepository(db *database.DB) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

// FindByID retrieves a team by ID with the requested relations
func (r *PostgresTeamRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Team, error) {
	if err := rel.check("team"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	team, err := selectByID[models.Team](ctx, pool, teamsTable, id)
	if err != nil {
		return nil, wrapError("get team", err)
	}
	if team == nil {
		return nil, nil
	}

	if err := (loader{q: pool}).teams(ctx, []*models.Team{team}, rel); err != nil {
		return nil, wrapError("get team", err)
	}
	return team, nil
}

// FindAll retrieves every team
func (r *PostgresTeamRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Team, error) {
	return r.find(ctx, "query teams", rel, "")
}

// FindByIDs retrieves the teams that exist among ids
func (r *PostgresTeamRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Team, error) {
	if len(ids) == 0 {
		return []*models.Team{}, rel.check("team")
	}
	return r.find(ctx, "query teams by ids", rel, "id = ANY($1)", ids)
}

func (r *PostgresTeamRepository) find(ctx context.Context, action string, rel Relations, where string, args ...any) ([]*models.Team, error) {
	if err := rel.check("team"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	teams, err := selectWhere[models.Team](ctx, pool, teamsTable, where, args...)
	if err != nil {
		return nil, wrapError(action, err)
	}
	if err := (loader{q: pool}).teams(ctx, teams, rel); err != nil {
		return nil, wrapError(action, err)
	}
	return teams, nil
}

// Save inserts or overwrites the team row. When team.Drivers is non-nil the
// stored driver associations are replaced by it in the same transaction;
// a nil slice leaves them as they are.
func (r *PostgresTeamRepository) Save(ctx context.Context, team *models.Team) (*models.Team, error) {
	if team.Drivers == nil {
		id, err := r.upsert(ctx, r.db.GetPool(), team)
		if err != nil {
			return nil, wrapError("save team", err)
		}
		team.ID = id
		return team, nil
	}

	var id uuid.UUID
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if id, err = r.upsert(ctx, tx, team); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteTeamDriversSQL, id); err != nil {
			return err
		}
		if len(team.Drivers) == 0 {
			return nil
		}
		_, err = tx.Exec(ctx, insertTeamDriversSQL, id, team.DriverIDsOf())
		return err
	})
	if err != nil {
		return nil, wrapError("save team", err)
	}

	team.ID = id
	return team, nil
}

func (r *PostgresTeamRepository) upsert(ctx context.Context, q querier, team *models.Team) (uuid.UUID, error) {
	return upsert(ctx, q, teamsTable, team.ID, team.Name, team.Nationality, team.BusinessAddressID)
}

// Delete deletes a team and its driver associations. Drivers are kept; the
// delete fails while cars still belong to the team.
func (r *PostgresTeamRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), teamsTable, id)
	if err != nil {
		return outcome, wrapError("delete team", err)
	}
	return outcome, nil
}
