package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationsHas(t *testing.T) {
	rel := Relations{"class", "team.businessAddress"}

	assert.True(t, rel.Has("class"))
	assert.True(t, rel.Has("team"), "nested path implies its parent")
	assert.False(t, rel.Has("businessAddress"))
	assert.False(t, rel.Has("tea"))
	assert.False(t, NoRelations.Has("class"))
}

func TestRelationsSub(t *testing.T) {
	assert.Equal(t, Relations{"businessAddress"}, CarRelations.Sub("team"))
	assert.Equal(t, Relations{"homeAddress", "managementAddress"}, TeamRelations.Sub("drivers"))
	assert.Empty(t, CarRelations.Sub("class"))
}

func TestRelationsHeads(t *testing.T) {
	assert.Equal(t, []string{"race", "car", "driver", "class"}, RaceResultRelations.Heads())
	assert.Empty(t, NoRelations.Heads())
}

func TestDefaultRelationsAreValid(t *testing.T) {
	tests := map[string]Relations{
		"address":    AddressRelations,
		"class":      ClassRelations,
		"race":       RaceRelations,
		"car":        CarRelations,
		"driver":     DriverRelations,
		"team":       TeamRelations,
		"raceResult": RaceResultRelations,
	}

	for entity, rel := range tests {
		t.Run(entity, func(t *testing.T) {
			assert.NoError(t, rel.check(entity))
		})
	}
}

func TestRelationsCheckRejectsUnknown(t *testing.T) {
	assert.Error(t, Relations{"raceResults"}.check("race"))
	assert.Error(t, Relations{"drivers"}.check("car"))
	assert.Error(t, Relations{"class"}.check("address"))
}
