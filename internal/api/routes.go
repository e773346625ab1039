package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/models"
	"github.com/yourusername/paddock/internal/repository"
)

// Route is one entry of the route table. Payload, when set, is the body
// type whose validated fields the route accepts.
type Route struct {
	Method      string
	Path        string
	Tag         string
	Description string
	Payload     any
	Handler     gin.HandlerFunc
}

// Fields lists the JSON names of the payload fields carrying validation rules.
func (r Route) Fields() []string {
	if r.Payload == nil {
		return nil
	}
	t := reflect.TypeOf(r.Payload)
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("validate") == "" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		fields = append(fields, name)
	}
	return fields
}

func addressID(a *models.Address) uuid.UUID { return a.ID }
func classID(cl *models.Class) uuid.UUID    { return cl.ID }
func carID(car *models.Car) uuid.UUID       { return car.ID }
func driverID(d *models.Driver) uuid.UUID   { return d.ID }
func teamID(t *models.Team) uuid.UUID       { return t.ID }

// Routes returns the route table, relative to the /api prefix.
func (h *Handler) Routes() []Route {
	r := h.repos
	return []Route{
		{http.MethodGet, "/addresses", "Address", "Get all addresses", nil, list[models.Address](h, r.Address, repository.AddressRelations)},
		{http.MethodPost, "/addresses", "Address", "Add a new address", AddressPayload{}, create[models.Address, AddressPayload](h, "address", r.Address, addressID)},
		{http.MethodGet, "/addresses/:id", "Address", "Find address by ID", nil, get[models.Address](h, r.Address, repository.AddressRelations)},
		{http.MethodPut, "/addresses/:id", "Address", "Update an existing address", AddressPayload{}, update[models.Address, AddressPayload](h, "address", r.Address, r.Address)},
		{http.MethodDelete, "/addresses/:id", "Address", "Delete an address", nil, remove[models.Address](h, "address", r.Address)},

		{http.MethodGet, "/classes", "Class", "Get all classes", nil, list[models.Class](h, r.Class, repository.ClassRelations)},
		{http.MethodPost, "/classes", "Class", "Add a new class", ClassPayload{}, create[models.Class, ClassPayload](h, "class", r.Class, classID)},
		{http.MethodGet, "/classes/:id", "Class", "Find class by ID", nil, get[models.Class](h, r.Class, repository.ClassRelations)},
		{http.MethodPut, "/classes/:id", "Class", "Update an existing class", ClassPayload{}, update[models.Class, ClassPayload](h, "class", r.Class, r.Class)},
		{http.MethodDelete, "/classes/:id", "Class", "Delete a class", nil, remove[models.Class](h, "class", r.Class)},

		{http.MethodGet, "/cars", "Car", "Get all cars, optionally filtered by make and model", nil, h.listCars},
		{http.MethodPost, "/cars", "Car", "Add a new car", CarPayload{}, create[models.Car, CarPayload](h, "car", r.Car, carID)},
		{http.MethodGet, "/cars/:id", "Car", "Find car by ID", nil, get[models.Car](h, r.Car, repository.CarRelations)},
		{http.MethodPut, "/cars/:id", "Car", "Update an existing car", CarPayload{}, update[models.Car, CarPayload](h, "car", r.Car, r.Car)},
		{http.MethodDelete, "/cars/:id", "Car", "Delete a car", nil, remove[models.Car](h, "car", r.Car)},
		{http.MethodGet, "/cars/:id/results", "Car", "All race results for that car", nil,
			resultsFor[models.Car](h, r.Car, func(id uuid.UUID) models.RaceResultQuery { return models.RaceResultQuery{Car: &id} })},

		{http.MethodGet, "/drivers", "Driver", "Get all drivers", nil, list[models.Driver](h, r.Driver, repository.DriverRelations)},
		{http.MethodPost, "/drivers", "Driver", "Add a new driver", DriverPayload{}, create[models.Driver, DriverPayload](h, "driver", r.Driver, driverID)},
		{http.MethodGet, "/drivers/:id", "Driver", "Find driver by ID", nil, get[models.Driver](h, r.Driver, repository.DriverRelations)},
		{http.MethodPut, "/drivers/:id", "Driver", "Update an existing driver", DriverPayload{}, update[models.Driver, DriverPayload](h, "driver", r.Driver, r.Driver)},
		{http.MethodDelete, "/drivers/:id", "Driver", "Delete a driver", nil, remove[models.Driver](h, "driver", r.Driver)},
		{http.MethodGet, "/drivers/:id/results", "Driver", "All race results for that driver", nil,
			resultsFor[models.Driver](h, r.Driver, func(id uuid.UUID) models.RaceResultQuery { return models.RaceResultQuery{Driver: &id} })},

		{http.MethodGet, "/teams", "Team", "Get all teams", nil, list[models.Team](h, r.Team, repository.TeamRelations)},
		{http.MethodPost, "/teams", "Team", "Add a new team", TeamPayload{}, create[models.Team, TeamPayload](h, "team", h.teams, teamID)},
		{http.MethodGet, "/teams/:id", "Team", "Find team by ID", nil, get[models.Team](h, r.Team, repository.TeamRelations)},
		{http.MethodPut, "/teams/:id", "Team", "Update an existing team", TeamPayload{}, update[models.Team, TeamPayload](h, "team", r.Team, h.teams)},
		{http.MethodDelete, "/teams/:id", "Team", "Delete a team", nil, remove[models.Team](h, "team", r.Team)},

		{http.MethodGet, "/races", "Race", "Get all races", nil, list[models.Race](h, r.Race, repository.RaceRelations)},
		{http.MethodPost, "/races", "Race", "Add a new race with its results", RacePayload{}, h.createRace},
		{http.MethodGet, "/races/:id", "Race", "Find race by ID", nil, get[models.Race](h, r.Race, repository.RaceRelations)},
		{http.MethodPut, "/races/:id", "Race", "Update an existing race", RacePayload{}, update[models.Race, RacePayload](h, "race", r.Race, r.Race)},
		{http.MethodDelete, "/races/:id", "Race", "Delete a race", nil, remove[models.Race](h, "race", r.Race)},
		{http.MethodGet, "/races/:id/results", "Race", "All race results for that race", nil,
			resultsFor[models.Race](h, r.Race, func(id uuid.UUID) models.RaceResultQuery { return models.RaceResultQuery{Race: &id} })},
		{http.MethodPost, "/races/:id/results", "Race", "Add race results for that race", RaceResultsPayload{}, h.appendRaceResults},

		{http.MethodPut, "/race-results/:id", "RaceResult", "Update an existing race result", RaceResultPayload{}, h.updateRaceResult},
		{http.MethodDelete, "/race-results/:id", "RaceResult", "Delete a race result", nil, remove[models.RaceResult](h, "race_result", r.RaceResult)},
	}
}

// Register mounts the route table on group.
func (h *Handler) Register(group *gin.RouterGroup) {
	for _, route := range h.Routes() {
		group.Handle(route.Method, route.Path, route.Handler)
	}
}
