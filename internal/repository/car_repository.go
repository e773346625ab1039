package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresCarRepository implements CarRepository for PostgreSQL
type PostgresCarRepository struct {
	db *database.DB
}

// NewPostgresCarRepository creates a new car repository
func NewPostgresCarRepository(db *database.DB) CarRepository {
	return &PostgresCarRepository{db: db}
}

// FindByID retrieves a car by ID with the requested relations
func (r *PostgresCarRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Car, error) {
	if err := rel.check("car"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	car, err := selectByID[models.Car](ctx, pool, carsTable, id)
	if err != nil {
		return nil, wrapError("get car", err)
	}
	if car == nil {
		return nil, nil
	}

	if err := (loader{q: pool}).cars(ctx, []*models.Car{car}, rel); err != nil {
		return nil, wrapError("get car", err)
	}
	return car, nil
}

// FindAll retrieves every car
func (r *PostgresCarRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Car, error) {
	return r.find(ctx, "query cars", rel, "")
}

// FindByIDs retrieves the cars that exist among ids
func (r *PostgresCarRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Car, error) {
	if len(ids) == 0 {
		return []*models.Car{}, rel.check("car")
	}
	return r.find(ctx, "query cars by ids", rel, "id = ANY($1)", ids)
}

// FindAllByQuery retrieves cars whose make and model contain the given
// substrings. Matching is case-sensitive; unset fields match everything.
func (r *PostgresCarRepository) FindAllByQuery(ctx context.Context, query models.CarQuery, rel Relations) ([]*models.Car, error) {
	where, args := carQueryClause(query)
	return r.find(ctx, "query cars by make and model", rel, where, args...)
}

// carQueryClause builds the WHERE clause for query. strpos keeps the match a
// literal substring, so '%' and '_' in the input carry no pattern meaning.
func carQueryClause(query models.CarQuery) (string, []any) {
	var f filter
	if query.Make != nil {
		f.add("strpos(make, ?) > 0", *query.Make)
	}
	if query.Model != nil {
		f.add("strpos(model, ?) > 0", *query.Model)
	}
	return f.where(), f.args
}

func (r *PostgresCarRepository) find(ctx context.Context, action string, rel Relations, where string, args ...any) ([]*models.Car, error) {
	if err := rel.check("car"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	cars, err := selectWhere[models.Car](ctx, pool, carsTable, where, args...)
	if err != nil {
		return nil, wrapError(action, err)
	}
	if err := (loader{q: pool}).cars(ctx, cars, rel); err != nil {
		return nil, wrapError(action, err)
	}
	return cars, nil
}

// Save inserts a new car or overwrites an existing one
func (r *PostgresCarRepository) Save(ctx context.Context, car *models.Car) (*models.Car, error) {
	id, err := upsert(ctx, r.db.GetPool(), carsTable, car.ID,
		car.Make, car.Model, car.ClassID, car.TeamID)
	if err != nil {
		return nil, wrapError("save car", err)
	}
	car.ID = id
	return car, nil
}

// Delete deletes a car
func (r *PostgresCarRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), carsTable, id)
	if err != nil {
		return outcome, wrapError("delete car", err)
	}
	return outcome, nil
}
