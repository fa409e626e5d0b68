package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FindsEmbeddedMigrations(t *testing.T) {
	migrations, err := Source().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, "0001_init_schema.sql", first.Id)
	assert.NotEmpty(t, first.Up)
	assert.NotEmpty(t, first.Down)
}

func TestRun_UnknownDirection(t *testing.T) {
	_, err := Run(nil, "sideways", 0)
	assert.Error(t, err)
}
