package models

import "github.com/google/uuid"

// Race represents a race event. Results are never loaded onto it; they are
// queried separately by race id.
type Race struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name" validate:"required"`

	// RaceResults holds results embedded in a create payload.
	RaceResults []*RaceResult `db:"-" json:"raceResults,omitempty"`
}

// HasResults reports whether the race carries embedded results.
func (r *Race) HasResults() bool {
	return len(r.RaceResults) > 0
}
