package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_create_schema.sql", names[0])

	body, err := fs.ReadFile(migrations, names[0])
	require.NoError(t, err)

	schema := string(body)
	assert.Contains(t, schema, "---- create above / drop below ----")
	assert.Contains(t, schema, "CONSTRAINT unique_car_race_driver UNIQUE (car_id, race_id, driver_id)")
	assert.Equal(t, 3, strings.Count(schema, "ON DELETE SET NULL"))
}
