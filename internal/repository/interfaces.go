package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/models"
)

// Every read takes an explicit relation-loading policy. FindByID returns
// nil and no error when the id matches no row. Delete reports the affected
// row count; zero means nothing matched.

// AddressRepository defines the interface for address data access
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Address, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Address, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Address, error)
	Save(ctx context.Context, address *models.Address) (*models.Address, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// ClassRepository defines the interface for class data access
type ClassRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Class, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Class, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Class, error)
	Save(ctx context.Context, class *models.Class) (*models.Class, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// CarRepository defines the interface for car data access
type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Car, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Car, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Car, error)
	// FindAllByQuery matches make and model as case-sensitive substrings.
	FindAllByQuery(ctx context.Context, query models.CarQuery, rel Relations) ([]*models.Car, error)
	Save(ctx context.Context, car *models.Car) (*models.Car, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// DriverRepository defines the interface for driver data access
type DriverRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Driver, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Driver, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Driver, error)
	Save(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Team, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Team, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Team, error)
	// Save replaces the team's driver associations when team.Drivers is non-nil.
	Save(ctx context.Context, team *models.Team) (*models.Team, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// RaceRepository defines the interface for race data access
type RaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Race, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.Race, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Race, error)
	Save(ctx context.Context, race *models.Race) (*models.Race, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}

// RaceResultRepository defines the interface for race result data access
type RaceResultRepository interface {
	FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.RaceResult, error)
	FindAll(ctx context.Context, rel Relations) ([]*models.RaceResult, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.RaceResult, error)
	// FindByQuery matches each set foreign key exactly.
	FindByQuery(ctx context.Context, query models.RaceResultQuery, rel Relations) ([]*models.RaceResult, error)
	Save(ctx context.Context, result *models.RaceResult) (*models.RaceResult, error)
	Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error)
}
