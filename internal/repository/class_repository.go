package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/models"
)

// PostgresClassRepository implements ClassRepository for PostgreSQL
type PostgresClassRepository struct {
	db *database.DB
}

// NewPostgresClassRepository creates a new class repository
func NewPostgresClassRepository(db *database.DB) ClassRepository {
	return &PostgresClassRepository{db: db}
}

func (r *PostgresClassRepository) FindByID(ctx context.Context, id uuid.UUID, rel Relations) (*models.Class, error) {
	if err := rel.check("class"); err != nil {
		return nil, err
	}
	class, err := selectByID[models.Class](ctx, r.db.GetPool(), classesTable, id)
	if err != nil {
		return nil, wrapError("get class", err)
	}
	return class, nil
}

func (r *PostgresClassRepository) FindAll(ctx context.Context, rel Relations) ([]*models.Class, error) {
	if err := rel.check("class"); err != nil {
		return nil, err
	}
	classes, err := selectWhere[models.Class](ctx, r.db.GetPool(), classesTable, "")
	if err != nil {
		return nil, wrapError("query classes", err)
	}
	return classes, nil
}

func (r *PostgresClassRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel Relations) ([]*models.Class, error) {
	if err := rel.check("class"); err != nil {
		return nil, err
	}
	classes, err := selectByIDs[models.Class](ctx, r.db.GetPool(), classesTable, ids)
	if err != nil {
		return nil, wrapError("query classes by ids", err)
	}
	return classes, nil
}

func (r *PostgresClassRepository) Save(ctx context.Context, class *models.Class) (*models.Class, error) {
	id, err := upsert(ctx, r.db.GetPool(), classesTable, class.ID, class.Name)
	if err != nil {
		return nil, wrapError("save class", err)
	}
	class.ID = id
	return class, nil
}

// Delete fails with a foreign-key violation while cars or results still use the class.
func (r *PostgresClassRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	outcome, err := deleteByID(ctx, r.db.GetPool(), classesTable, id)
	if err != nil {
		return outcome, wrapError("delete class", err)
	}
	return outcome, nil
}
