package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yourusername/paddock/internal/models"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(1, 3))
	assert.Equal(t, "$2", placeholders(2, 1))
	assert.Equal(t, "", placeholders(1, 0))
}

func TestTableSQL(t *testing.T) {
	assert.Equal(t, "SELECT id, name FROM races", racesTable.selectSQL())
	assert.Equal(t, []string{"make", "model", "class_id", "team_id"}, carsTable.writeColumns())
}

func TestCarQueryClause(t *testing.T) {
	ferrari, f488 := "Ferrari", "488"

	where, args := carQueryClause(models.CarQuery{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = carQueryClause(models.CarQuery{Make: &ferrari})
	assert.Equal(t, "strpos(make, $1) > 0", where)
	assert.Equal(t, []any{"Ferrari"}, args)

	where, args = carQueryClause(models.CarQuery{Make: &ferrari, Model: &f488})
	assert.Equal(t, "strpos(make, $1) > 0 AND strpos(model, $2) > 0", where)
	assert.Equal(t, []any{"Ferrari", "488"}, args)
}

func TestRaceResultQueryClause(t *testing.T) {
	race, driver := uuid.New(), uuid.New()

	where, args := raceResultQueryClause(models.RaceResultQuery{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = raceResultQueryClause(models.RaceResultQuery{Race: &race, Driver: &driver})
	assert.Equal(t, "race_id = $1 AND driver_id = $2", where)
	assert.Equal(t, []any{race, driver}, args)
}

func TestCollectIDsDeduplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cars := []*models.Car{{ClassID: a}, {ClassID: b}, {ClassID: a}}

	assert.Equal(t, []uuid.UUID{a, b}, collectIDs(cars, func(c *models.Car) uuid.UUID { return c.ClassID }))
}

func TestCollectOptionalIDsSkipsNil(t *testing.T) {
	home, mgmt := uuid.New(), uuid.New()
	drivers := []*models.Driver{
		{HomeAddressID: &home},
		{HomeAddressID: &home, ManagementAddressID: &mgmt},
		{},
	}

	ids := collectOptionalIDs(drivers,
		func(d *models.Driver) *uuid.UUID { return d.HomeAddressID },
		func(d *models.Driver) *uuid.UUID { return d.ManagementAddressID })
	assert.Equal(t, []uuid.UUID{home, mgmt}, ids)
}
