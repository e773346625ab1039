package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Nationality is the closed set of nationalities a driver or team may carry.
type Nationality string

const (
	NationalityUSA     Nationality = "USA"
	NationalityVietNam Nationality = "Viet Nam"
)

// Nationalities lists every accepted value in declaration order.
var Nationalities = []Nationality{NationalityUSA, NationalityVietNam}

// ParseNationality converts s into a Nationality, rejecting anything outside the set.
func ParseNationality(s string) (Nationality, error) {
	for _, n := range Nationalities {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNationality, s)
}

// Valid reports whether n is one of the declared values.
func (n Nationality) Valid() bool {
	_, err := ParseNationality(string(n))
	return err == nil
}

// UnmarshalJSON rejects values outside the set at decode time.
func (n *Nationality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseNationality(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Value implements driver.Valuer.
func (n Nationality) Value() (driver.Value, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNationality, string(n))
	}
	return string(n), nil
}

// Scan implements sql.Scanner.
func (n *Nationality) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Nationality", src)
	}
	parsed, err := ParseNationality(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
