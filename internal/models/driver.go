package models

import "github.com/google/uuid"

// Driver has optional home and management addresses and races for many teams.
type Driver struct {
	ID                  uuid.UUID   `db:"id" json:"id"`
	FirstName           string      `db:"first_name" json:"firstName" validate:"required,max=40"`
	LastName            string      `db:"last_name" json:"lastName" validate:"required,max=40"`
	Nationality         Nationality `db:"nationality" json:"nationality" validate:"required"`
	HomeAddressID       *uuid.UUID  `db:"home_address_id" json:"homeAddressId"`
	ManagementAddressID *uuid.UUID  `db:"management_address_id" json:"managementAddressId"`

	HomeAddress       *Address `db:"-" json:"homeAddress,omitempty"`
	ManagementAddress *Address `db:"-" json:"managementAddress,omitempty"`
	Teams             []*Team  `db:"-" json:"teams,omitempty"`
}

// FullName returns "First Last".
func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
