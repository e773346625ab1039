package models

import "github.com/google/uuid"

// Team owns the team/driver association and has many cars.
type Team struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	Name              string      `db:"name" json:"name" validate:"required,max=100"`
	Nationality       Nationality `db:"nationality" json:"nationality" validate:"required"`
	BusinessAddressID *uuid.UUID  `db:"business_address_id" json:"businessAddressId"`

	BusinessAddress *Address `db:"-" json:"businessAddress,omitempty"`
	Cars            []*Car   `db:"-" json:"cars,omitempty"`

	// Drivers is the resolved association. A nil slice leaves the stored
	// association untouched on save; a non-nil slice replaces it.
	Drivers []*Driver `db:"-" json:"drivers,omitempty"`

	// DriverIDs carries unresolved driver identifiers from a write payload.
	DriverIDs []uuid.UUID `db:"-" json:"-"`
}

// DriverIDsOf returns the ids of the resolved drivers.
func (t *Team) DriverIDsOf() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Drivers))
	for _, d := range t.Drivers {
		ids = append(ids, d.ID)
	}
	return ids
}
