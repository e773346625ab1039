package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNationality(t *testing.T) {
	tests := []struct {
		input   string
		want    Nationality
		wantErr bool
	}{
		{input: "USA", want: NationalityUSA},
		{input: "Viet Nam", want: NationalityVietNam},
		{input: "usa", wantErr: true},
		{input: "Vietnam", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNationality(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidNationality))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNationalityUnmarshalRejectsUnknownValue(t *testing.T) {
	var team Team
	err := json.Unmarshal([]byte(`{"name":"Corvette","nationality":"France"}`), &team)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNationality))

	err = json.Unmarshal([]byte(`{"name":"Corvette","nationality":"USA"}`), &team)
	require.NoError(t, err)
	assert.Equal(t, NationalityUSA, team.Nationality)
}

func TestNationalityScanAndValue(t *testing.T) {
	var n Nationality
	require.NoError(t, n.Scan([]byte("Viet Nam")))
	assert.Equal(t, NationalityVietNam, n)

	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, "Viet Nam", v)

	assert.Error(t, n.Scan(42))
	_, err = Nationality("Mars").Value()
	assert.Error(t, err)
}

func TestConstraintErrorMatching(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := error(&ConstraintError{Kind: UniqueViolation, Constraint: "unique_car_race_driver", Table: "race_results", Err: cause})

	assert.True(t, errors.Is(err, ErrConstraint))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.Contains(t, err.Error(), "unique_car_race_driver")
}

func TestRaceResultFinishPosition(t *testing.T) {
	zero := 0
	dnf := &RaceResult{}
	last := &RaceResult{FinishPosition: &zero}

	assert.False(t, dnf.IsFinished())
	assert.True(t, last.IsFinished())
}
