package models

import "github.com/google/uuid"

// Class is a competition category such as "LM GTE AM".
type Class struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name" validate:"required,max=100"`
}
