package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/paddock/internal/models"
)

// loader attaches related entities to already-read rows. Each relation level
// costs one query for the whole slice, never one per row.
type loader struct {
	q querier
}

// teamDriver is one row of the team_drivers association table.
type teamDriver struct {
	TeamID   uuid.UUID `db:"team_id"`
	DriverID uuid.UUID `db:"driver_id"`
}

func (l loader) links(ctx context.Context, column string, ids []uuid.UUID) ([]teamDriver, error) {
	rows, err := l.q.Query(ctx,
		fmt.Sprintf("SELECT team_id, driver_id FROM team_drivers WHERE %s = ANY($1)", column), ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[teamDriver])
}

func (l loader) addresses(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Address, error) {
	addresses, err := selectByIDs[models.Address](ctx, l.q, addressesTable, ids)
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	return indexByID(addresses, func(a *models.Address) uuid.UUID { return a.ID }), nil
}

func (l loader) classes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Class, error) {
	classes, err := selectByIDs[models.Class](ctx, l.q, classesTable, ids)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	return indexByID(classes, func(c *models.Class) uuid.UUID { return c.ID }), nil
}

func (l loader) cars(ctx context.Context, cars []*models.Car, rel Relations) error {
	if len(cars) == 0 {
		return nil
	}

	if rel.Has("class") {
		classes, err := l.classes(ctx, collectIDs(cars, func(c *models.Car) uuid.UUID { return c.ClassID }))
		if err != nil {
			return err
		}
		for _, car := range cars {
			car.Class = classes[car.ClassID]
		}
	}

	if rel.Has("team") {
		teams, err := selectByIDs[models.Team](ctx, l.q, teamsTable,
			collectIDs(cars, func(c *models.Car) uuid.UUID { return c.TeamID }))
		if err != nil {
			return fmt.Errorf("load car teams: %w", err)
		}
		if err := l.teams(ctx, teams, rel.Sub("team")); err != nil {
			return err
		}
		byID := indexByID(teams, func(t *models.Team) uuid.UUID { return t.ID })
		for _, car := range cars {
			car.Team = byID[car.TeamID]
		}
	}

	return nil
}

func (l loader) teams(ctx context.Context, teams []*models.Team, rel Relations) error {
	if len(teams) == 0 {
		return nil
	}
	teamIDs := collectIDs(teams, func(t *models.Team) uuid.UUID { return t.ID })

	if rel.Has("businessAddress") {
		addresses, err := l.addresses(ctx,
			collectOptionalIDs(teams, func(t *models.Team) *uuid.UUID { return t.BusinessAddressID }))
		if err != nil {
			return err
		}
		for _, team := range teams {
			if team.BusinessAddressID != nil {
				team.BusinessAddress = addresses[*team.BusinessAddressID]
			}
		}
	}

	if rel.Has("cars") {
		cars, err := selectWhere[models.Car](ctx, l.q, carsTable, "team_id = ANY($1)", teamIDs)
		if err != nil {
			return fmt.Errorf("load team cars: %w", err)
		}
		if err := l.cars(ctx, cars, rel.Sub("cars")); err != nil {
			return err
		}
		byTeam := make(map[uuid.UUID][]*models.Car, len(teams))
		for _, car := range cars {
			byTeam[car.TeamID] = append(byTeam[car.TeamID], car)
		}
		for _, team := range teams {
			team.Cars = append([]*models.Car{}, byTeam[team.ID]...)
		}
	}

	if rel.Has("drivers") {
		links, err := l.links(ctx, "team_id", teamIDs)
		if err != nil {
			return fmt.Errorf("load team drivers: %w", err)
		}
		drivers, err := selectByIDs[models.Driver](ctx, l.q, driversTable,
			uniqueIDs(links, func(td teamDriver) uuid.UUID { return td.DriverID }))
		if err != nil {
			return fmt.Errorf("load team drivers: %w", err)
		}
		if err := l.drivers(ctx, drivers, rel.Sub("drivers")); err != nil {
			return err
		}
		byID := indexByID(drivers, func(d *models.Driver) uuid.UUID { return d.ID })
		byTeam := make(map[uuid.UUID][]*models.Driver, len(teams))
		for _, link := range links {
			if d, ok := byID[link.DriverID]; ok {
				byTeam[link.TeamID] = append(byTeam[link.TeamID], d)
			}
		}
		for _, team := range teams {
			team.Drivers = append([]*models.Driver{}, byTeam[team.ID]...)
		}
	}

	return nil
}

func (l loader) drivers(ctx context.Context, drivers []*models.Driver, rel Relations) error {
	if len(drivers) == 0 {
		return nil
	}

	if rel.Has("homeAddress") || rel.Has("managementAddress") {
		addresses, err := l.addresses(ctx, collectOptionalIDs(drivers, func(d *models.Driver) *uuid.UUID {
			return d.HomeAddressID
		}, func(d *models.Driver) *uuid.UUID {
			return d.ManagementAddressID
		}))
		if err != nil {
			return err
		}
		for _, d := range drivers {
			if rel.Has("homeAddress") && d.HomeAddressID != nil {
				d.HomeAddress = addresses[*d.HomeAddressID]
			}
			if rel.Has("managementAddress") && d.ManagementAddressID != nil {
				d.ManagementAddress = addresses[*d.ManagementAddressID]
			}
		}
	}

	if rel.Has("teams") {
		links, err := l.links(ctx, "driver_id", collectIDs(drivers, func(d *models.Driver) uuid.UUID { return d.ID }))
		if err != nil {
			return fmt.Errorf("load driver teams: %w", err)
		}
		teams, err := selectByIDs[models.Team](ctx, l.q, teamsTable,
			uniqueIDs(links, func(td teamDriver) uuid.UUID { return td.TeamID }))
		if err != nil {
			return fmt.Errorf("load driver teams: %w", err)
		}
		if err := l.teams(ctx, teams, rel.Sub("teams")); err != nil {
			return err
		}
		byID := indexByID(teams, func(t *models.Team) uuid.UUID { return t.ID })
		byDriver := make(map[uuid.UUID][]*models.Team, len(drivers))
		for _, link := range links {
			if t, ok := byID[link.TeamID]; ok {
				byDriver[link.DriverID] = append(byDriver[link.DriverID], t)
			}
		}
		for _, d := range drivers {
			d.Teams = append([]*models.Team{}, byDriver[d.ID]...)
		}
	}

	return nil
}

func (l loader) raceResults(ctx context.Context, results []*models.RaceResult, rel Relations) error {
	if len(results) == 0 {
		return nil
	}

	if rel.Has("race") {
		races, err := selectByIDs[models.Race](ctx, l.q, racesTable,
			collectIDs(results, func(rr *models.RaceResult) uuid.UUID { return rr.RaceID }))
		if err != nil {
			return fmt.Errorf("load result races: %w", err)
		}
		byID := indexByID(races, func(r *models.Race) uuid.UUID { return r.ID })
		for _, rr := range results {
			rr.Race = byID[rr.RaceID]
		}
	}

	if rel.Has("car") {
		cars, err := selectByIDs[models.Car](ctx, l.q, carsTable,
			collectIDs(results, func(rr *models.RaceResult) uuid.UUID { return rr.CarID }))
		if err != nil {
			return fmt.Errorf("load result cars: %w", err)
		}
		if err := l.cars(ctx, cars, rel.Sub("car")); err != nil {
			return err
		}
		byID := indexByID(cars, func(c *models.Car) uuid.UUID { return c.ID })
		for _, rr := range results {
			rr.Car = byID[rr.CarID]
		}
	}

	if rel.Has("driver") {
		drivers, err := selectByIDs[models.Driver](ctx, l.q, driversTable,
			collectIDs(results, func(rr *models.RaceResult) uuid.UUID { return rr.DriverID }))
		if err != nil {
			return fmt.Errorf("load result drivers: %w", err)
		}
		if err := l.drivers(ctx, drivers, rel.Sub("driver")); err != nil {
			return err
		}
		byID := indexByID(drivers, func(d *models.Driver) uuid.UUID { return d.ID })
		for _, rr := range results {
			rr.Driver = byID[rr.DriverID]
		}
	}

	if rel.Has("class") {
		classes, err := l.classes(ctx, collectIDs(results, func(rr *models.RaceResult) uuid.UUID { return rr.ClassID }))
		if err != nil {
			return err
		}
		for _, rr := range results {
			rr.Class = classes[rr.ClassID]
		}
	}

	return nil
}

// collectIDs returns the distinct ids picked from items, in first-seen order.
func collectIDs[T any](items []*T, id func(*T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if v := id(item); !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	return ids
}

// collectOptionalIDs is collectIDs for nullable references; nil ids are skipped.
func collectOptionalIDs[T any](items []*T, pickers ...func(*T) *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	var ids []uuid.UUID
	for _, item := range items {
		for _, pick := range pickers {
			if v := pick(item); v != nil && !seen[*v] {
				seen[*v] = true
				ids = append(ids, *v)
			}
		}
	}
	return ids
}

func uniqueIDs[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	var ids []uuid.UUID
	for _, item := range items {
		if v := id(item); !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	return ids
}

func indexByID[T any](items []*T, id func(*T) uuid.UUID) map[uuid.UUID]*T {
	m := make(map[uuid.UUID]*T, len(items))
	for _, item := range items {
		m[id(item)] = item
	}
	return m
}
