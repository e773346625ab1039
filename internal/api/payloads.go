package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yourusername/paddock/internal/models"
)

// Identifiers in payloads are canonical 36-character UUID strings. The uuid
// rule guarantees that, so the mapping below parses with MustParse.

// AddressPayload is the create/update body for an address.
type AddressPayload struct {
	Street  *string `json:"street"`
	Street2 *string `json:"street2"`
	City    string  `json:"city" validate:"required"`
	State   string  `json:"state" validate:"required"`
	Zipcode string  `json:"zipcode" validate:"required"`
	Country string  `json:"country" validate:"required"`
}

func (p AddressPayload) toModel(id uuid.UUID) *models.Address {
	return &models.Address{
		ID:      id,
		Street:  p.Street,
		Street2: p.Street2,
		City:    p.City,
		State:   p.State,
		Zipcode: p.Zipcode,
		Country: p.Country,
	}
}

// ClassPayload is the create/update body for a class.
type ClassPayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (p ClassPayload) toModel(id uuid.UUID) *models.Class {
	return &models.Class{ID: id, Name: p.Name}
}

// CarPayload is the create/update body for a car.
type CarPayload struct {
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Class string `json:"class" validate:"required,uuid"`
	Team  string `json:"team" validate:"required,uuid"`
}

func (p CarPayload) toModel(id uuid.UUID) *models.Car {
	return &models.Car{
		ID:      id,
		Make:    p.Make,
		Model:   p.Model,
		ClassID: uuid.MustParse(p.Class),
		TeamID:  uuid.MustParse(p.Team),
	}
}

// DriverPayload is the create/update body for a driver.
type DriverPayload struct {
	FirstName         string  `json:"firstName" validate:"required,max=40"`
	LastName          string  `json:"lastName" validate:"required,max=40"`
	Nationality       string  `json:"nationality" validate:"required,nationality"`
	HomeAddress       *string `json:"homeAddress" validate:"omitempty,uuid"`
	ManagementAddress *string `json:"managementAddress" validate:"omitempty,uuid"`
}

func (p DriverPayload) toModel(id uuid.UUID) *models.Driver {
	return &models.Driver{
		ID:                  id,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Nationality:         models.Nationality(p.Nationality),
		HomeAddressID:       optionalID(p.HomeAddress),
		ManagementAddressID: optionalID(p.ManagementAddress),
	}
}

// TeamPayload is the create/update body for a team. Drivers lists driver ids.
type TeamPayload struct {
	Name            string   `json:"name" validate:"required,max=100"`
	Nationality     string   `json:"nationality" validate:"required,nationality"`
	BusinessAddress *string  `json:"businessAddress" validate:"omitempty,uuid"`
	Drivers         []string `json:"drivers" validate:"omitempty,dive,uuid"`
}

func (p TeamPayload) toModel(id uuid.UUID) *models.Team {
	team := &models.Team{
		ID:                id,
		Name:              p.Name,
		Nationality:       models.Nationality(p.Nationality),
		BusinessAddressID: optionalID(p.BusinessAddress),
	}
	for _, d := range p.Drivers {
		team.DriverIDs = append(team.DriverIDs, uuid.MustParse(d))
	}
	return team
}

// RaceResultPayload is one race result in a race or append body, and the
// update body for a single result. The race comes from the path.
type RaceResultPayload struct {
	Car            string `json:"car" validate:"required,uuid"`
	Driver         string `json:"driver" validate:"required,uuid"`
	Class          string `json:"class" validate:"required,uuid"`
	RaceNumber     string `json:"raceNumber" validate:"required"`
	StartPosition  *int   `json:"startPosition" validate:"required"`
	FinishPosition *int   `json:"finishPosition"`
}

func (p RaceResultPayload) toModel(id uuid.UUID) *models.RaceResult {
	return &models.RaceResult{
		ID:             id,
		CarID:          uuid.MustParse(p.Car),
		DriverID:       uuid.MustParse(p.Driver),
		ClassID:        uuid.MustParse(p.Class),
		RaceNumber:     p.RaceNumber,
		StartPosition:  *p.StartPosition,
		FinishPosition: p.FinishPosition,
	}
}

// RacePayload is the create body for a race, optionally with its results.
// Updates only use the name.
type RacePayload struct {
	Name        string              `json:"name" validate:"required"`
	RaceResults []RaceResultPayload `json:"raceResults" validate:"omitempty,dive"`
}

func (p RacePayload) toModel(id uuid.UUID) *models.Race {
	return &models.Race{
		ID:          id,
		Name:        p.Name,
		RaceResults: resultModels(p.RaceResults),
	}
}

// RaceResultsPayload is the body for appending results to a race.
type RaceResultsPayload struct {
	RaceResults []RaceResultPayload `json:"raceResults" validate:"omitempty,dive"`
}

func resultModels(payloads []RaceResultPayload) []*models.RaceResult {
	if len(payloads) == 0 {
		return nil
	}
	results := make([]*models.RaceResult, len(payloads))
	for i, p := range payloads {
		results[i] = p.toModel(uuid.Nil)
	}
	return results
}

func optionalID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

// newValidator returns a validator that reports JSON field names and knows
// the nationality rule.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("nationality", validateNationality)
	return v
}

func validateNationality(fl validator.FieldLevel) bool {
	_, err := models.ParseNationality(fl.Field().String())
	return err == nil
}
