package models

import "github.com/google/uuid"

// RaceResult links one car, driver, race and class. The (car, race, driver)
// triple is unique.
type RaceResult struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RaceID         uuid.UUID `db:"race_id" json:"raceId"`
	CarID          uuid.UUID `db:"car_id" json:"carId" validate:"required"`
	DriverID       uuid.UUID `db:"driver_id" json:"driverId" validate:"required"`
	ClassID        uuid.UUID `db:"class_id" json:"classId" validate:"required"`
	RaceNumber     string    `db:"race_number" json:"raceNumber" validate:"required"`
	StartPosition  int       `db:"start_position" json:"startPosition"`
	FinishPosition *int      `db:"finish_position" json:"finishPosition"` // nil: not finished

	Race   *Race   `db:"-" json:"race,omitempty"`
	Car    *Car    `db:"-" json:"car,omitempty"`
	Driver *Driver `db:"-" json:"driver,omitempty"`
	Class  *Class  `db:"-" json:"class,omitempty"`
}

// IsFinished reports whether a finishing position has been recorded.
func (rr *RaceResult) IsFinished() bool {
	return rr.FinishPosition != nil
}

// RaceResultQuery filters results by exact foreign key equality. Nil fields
// are ignored; an empty query matches every result.
type RaceResultQuery struct {
	Race   *uuid.UUID
	Car    *uuid.UUID
	Driver *uuid.UUID
}

// IsEmpty reports whether no filter is set.
func (q RaceResultQuery) IsEmpty() bool {
	return q.Race == nil && q.Car == nil && q.Driver == nil
}
