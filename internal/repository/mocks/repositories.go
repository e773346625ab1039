// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
)

// AddressRepository mocks repository.AddressRepository
type AddressRepository struct {
	mock.Mock
}

var _ repository.AddressRepository = (*AddressRepository)(nil)

func (m *AddressRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Address, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Address, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Address), args.Error(1)
}

func (m *AddressRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Address, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Address), args.Error(1)
}

func (m *AddressRepository) Save(ctx context.Context, address *models.Address) (*models.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// ClassRepository mocks repository.ClassRepository
type ClassRepository struct {
	mock.Mock
}

var _ repository.ClassRepository = (*ClassRepository)(nil)

func (m *ClassRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Class, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Class), args.Error(1)
}

func (m *ClassRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Class, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Class), args.Error(1)
}

func (m *ClassRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Class, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Class), args.Error(1)
}

func (m *ClassRepository) Save(ctx context.Context, class *models.Class) (*models.Class, error) {
	args := m.Called(ctx, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Class), args.Error(1)
}

func (m *ClassRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// CarRepository mocks repository.CarRepository
type CarRepository struct {
	mock.Mock
}

var _ repository.CarRepository = (*CarRepository)(nil)

func (m *CarRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Car, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *CarRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Car, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *CarRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Car, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *CarRepository) FindAllByQuery(ctx context.Context, query models.CarQuery, rel repository.Relations) ([]*models.Car, error) {
	args := m.Called(ctx, query, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *CarRepository) Save(ctx context.Context, car *models.Car) (*models.Car, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *CarRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// DriverRepository mocks repository.DriverRepository
type DriverRepository struct {
	mock.Mock
}

var _ repository.DriverRepository = (*DriverRepository)(nil)

func (m *DriverRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Driver, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *DriverRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Driver, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Driver), args.Error(1)
}

func (m *DriverRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Driver, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Driver), args.Error(1)
}

func (m *DriverRepository) Save(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	args := m.Called(ctx, driver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *DriverRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// TeamRepository mocks repository.TeamRepository
type TeamRepository struct {
	mock.Mock
}

var _ repository.TeamRepository = (*TeamRepository)(nil)

func (m *TeamRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Team, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *TeamRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Team, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *TeamRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Team, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *TeamRepository) Save(ctx context.Context, team *models.Team) (*models.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *TeamRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// RaceRepository mocks repository.RaceRepository
type RaceRepository struct {
	mock.Mock
}

var _ repository.RaceRepository = (*RaceRepository)(nil)

func (m *RaceRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.Race, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Race), args.Error(1)
}

func (m *RaceRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.Race, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Race), args.Error(1)
}

func (m *RaceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.Race, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Race), args.Error(1)
}

func (m *RaceRepository) Save(ctx context.Context, race *models.Race) (*models.Race, error) {
	args := m.Called(ctx, race)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Race), args.Error(1)
}

func (m *RaceRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// RaceResultRepository mocks repository.RaceResultRepository
type RaceResultRepository struct {
	mock.Mock
}

var _ repository.RaceResultRepository = (*RaceResultRepository)(nil)

func (m *RaceResultRepository) FindByID(ctx context.Context, id uuid.UUID, rel repository.Relations) (*models.RaceResult, error) {
	args := m.Called(ctx, id, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RaceResult), args.Error(1)
}

func (m *RaceResultRepository) FindAll(ctx context.Context, rel repository.Relations) ([]*models.RaceResult, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RaceResult), args.Error(1)
}

func (m *RaceResultRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, rel repository.Relations) ([]*models.RaceResult, error) {
	args := m.Called(ctx, ids, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RaceResult), args.Error(1)
}

func (m *RaceResultRepository) FindByQuery(ctx context.Context, query models.RaceResultQuery, rel repository.Relations) ([]*models.RaceResult, error) {
	args := m.Called(ctx, query, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RaceResult), args.Error(1)
}

func (m *RaceResultRepository) Save(ctx context.Context, result *models.RaceResult) (*models.RaceResult, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RaceResult), args.Error(1)
}

func (m *RaceResultRepository) Delete(ctx context.Context, id uuid.UUID) (models.DeletionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeletionOutcome), args.Error(1)
}

// Repositories returns a repository.Repositories backed by fresh mocks.
func Repositories() (*repository.Repositories, *Set) {
	s := &Set{
		Address:    &AddressRepository{},
		Class:      &ClassRepository{},
		Car:        &CarRepository{},
		Driver:     &DriverRepository{},
		Team:       &TeamRepository{},
		Race:       &RaceRepository{},
		RaceResult: &RaceResultRepository{},
	}
	return &repository.Repositories{
		Address:    s.Address,
		Class:      s.Class,
		Car:        s.Car,
		Driver:     s.Driver,
		Team:       s.Team,
		Race:       s.Race,
		RaceResult: s.RaceResult,
	}, s
}

// Set exposes the concrete mocks behind Repositories for expectations.
type Set struct {
	Address    *AddressRepository
	Class      *ClassRepository
	Car        *CarRepository
	Driver     *DriverRepository
	Team       *TeamRepository
	Race       *RaceRepository
	RaceResult *RaceResultRepository
}
