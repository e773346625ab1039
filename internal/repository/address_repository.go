package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresAddressRepository implements AddressRepository for PostgreSQL
type PostgresAddressRepository struct {
	db *database.DB
}

// NewPostgresAddressRepository creates a new address repository
func NewPostgresAddressRepository(db *database.DB) AddressRepository {
	return &PostgresAddressRepository{db: db}
}

// FindByID retrieves an address by ID
func (r *PostgresAddressRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Address, error) {
	if err := rel.check("address"); err != nil {
		return nil, err
	}
	address, err := selectByID[models.Address](ctx, r.db.GetPool(), addressesTable, id)
	if err != nil {
		return nil, wrapError("get address", err)
	}
	return address, nil
}

// FindAll retrieves every address
func (r *PostgresAddressRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Address, error) {
	if err := rel.check("address"); err != nil {
		return nil, err
	}
	addresses, err := selectWhere[models.Address](ctx, r.db.GetPool(), addressesTable, "")
	if err != nil {
		return nil, wrapError("query addresses", err)
	}
	return addresses, nil
}

// FindByIDs retrieves the addresses that exist among ids
func (r *PostgresAddressRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Address, error) {
	if err := rel.check("address"); err != nil {
		return nil, err
	}
	addresses, err := selectByIDs[models.Address](ctx, r.db.GetPool(), addressesTable, ids)
	if err != nil {
		return nil, wrapError("query addresses by ids", err)
	}
	return addresses, nil
}

// Save inserts a new address or overwrites an existing one
func (r *PostgresAddressRepository) Save(ctx context.Context, address *models.Address) (*models.Address, error) {
	id, err := upsert(ctx, r.db.GetPool(), addressesTable, address.ID,
		address.Street, address.Street2, address.City, address.State, address.Zipcode, address.Country)
	if err != nil {
		return nil, wrapError("save address", err)
	}
	address.ID = id
	return address, nil
}

// Delete deletes an address. Drivers and teams referencing it keep their rows.
func (r *PostgresAddressRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), addressesTable, id)
	if err != nil {
		return outcome, wrapError("delete address", err)
	}
	return outcome, nil
}
