package repository

import (
	"fmt"

	"github.com/yourusername/paddock/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Address    AddressRepository
	Class      ClassRepository
	Car        CarRepository
	Driver     DriverRepository
	Team       TeamRepository
	Race       RaceRepository
	RaceResult RaceResultRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Address:    NewPostgresAddressRepository(db),
		Class:      NewPostgresClassRepository(db),
		Car:        NewPostgresCarRepository(db),
		Driver:     NewPostgresDriverRepository(db),
		Team:       NewPostgresTeamRepository(db),
		Race:       NewPostgresRaceRepository(db),
		RaceResult: NewPostgresRaceResultRepository(db),
	}, nil
}
