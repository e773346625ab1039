package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresDriverRepository implements DriverRepository for PostgreSQL
type PostgresDriverRepository struct {
	db *database.DB
}

// NewPostgresDriverRepository creates a new driver repository
func NewPostgresDriverRepository(db *database.DB) DriverRepository {
	return &PostgresDriverRepository{db: db}
}

// FindByID retrieves a driver by ID with the requested relations
func (r *PostgresDriverRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Driver, error) {
	if err := rel.check("driver"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	driver, err := selectByID[models.Driver](ctx, pool, driversTable, id)
	if err != nil {
		return nil, wrapError("get driver", err)
	}
	if driver == nil {
		return nil, nil
	}

	if err := (loader{q: pool}).drivers(ctx, []*models.Driver{driver}, rel); err != nil {
		return nil, wrapError("get driver", err)
	}
	return driver, nil
}

// FindAll retrieves every driver
func (r *PostgresDriverRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Driver, error) {
	return r.find(ctx, "query drivers", rel, "")
}

// FindByIDs retrieves the drivers that exist among ids. Unknown ids are omitted.
func (r *PostgresDriverRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Driver, error) {
	if len(ids) == 0 {
		return []*models.Driver{}, rel.check("driver")
	}
	return r.find(ctx, "query drivers by ids", rel, "id = ANY($1)", ids)
}

func (r *PostgresDriverRepository) find(ctx context.Context, action string, rel Relations, where string, args ...any) ([]*models.Driver, error) {
	if err := rel.check("driver"); err != nil {
		return nil, err
	}

	pool := r.db.GetPool()
	drivers, err := selectWhere[models.Driver](ctx, pool, driversTable, where, args...)
	if err != nil {
		return nil, wrapError(action, err)
	}
	if err := (loader{q: pool}).drivers(ctx, drivers, rel); err != nil {
		return nil, wrapError(action, err)
	}
	return drivers, nil
}

// Save inserts a new driver or overwrites an existing one. Team membership is
// owned by the team side and is not written here.
func (r *PostgresDriverRepository) Save(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	id, err := upsert(ctx, r.db.GetPool(), driversTable, driver.ID,
		driver.FirstName, driver.LastName, driver.Nationality,
		driver.HomeAddressID, driver.ManagementAddressID)
	if err != nil {
		return nil, wrapError("save driver", err)
	}
	driver.ID = id
	return driver, nil
}

// Delete deletes a driver together with its team association rows
func (r *PostgresDriverRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), driversTable, id)
	if err != nil {
		return outcome, wrapError("delete driver", err)
	}
	return outcome, nil
}
