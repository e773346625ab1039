package models

import "github.com/google/uuid"

// Car belongs to one team and one class.
type Car struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Make    string    `db:"make" json:"make" validate:"required"`
	Model   string    `db:"model" json:"model" validate:"required"`
	ClassID uuid.UUID `db:"class_id" json:"classId" validate:"required"`
	TeamID  uuid.UUID `db:"team_id" json:"teamId" validate:"required"`

	Class *Class `db:"-" json:"class,omitempty"`
	Team  *Team  `db:"-" json:"team,omitempty"`
}

// CarQuery filters cars by case-sensitive substring matches. Nil fields are
// ignored; an empty query matches every car.
type CarQuery struct {
	Make  *string
	Model *string
}

// IsEmpty reports whether no filter is set.
func (q CarQuery) IsEmpty() bool {
	return q.Make == nil && q.Model == nil
}
