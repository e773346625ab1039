package models

import "github.com/google/uuid"

// Address is a postal address. Drivers and teams reference it by id and
// lose the reference, not the row, when the address is deleted.
type Address struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Street  *string   `db:"street" json:"street"`
	Street2 *string   `db:"street2" json:"street2"`
	City    string    `db:"city" json:"city" validate:"required"`
	State   string    `db:"state" json:"state" validate:"required"`
	Zipcode string    `db:"zipcode" json:"zipcode" validate:"required"`
	Country string    `db:"country" json:"country" validate:"required"`
}
