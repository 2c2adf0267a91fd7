package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	m := NewMigrator(nil)

	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, "settings kv", first.Description)
	assert.Contains(t, first.SQL, "CREATE TABLE IF NOT EXISTS kv")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)

	defer func() { _ = db.Close() }()

	m := NewMigrator(db)

	version, err := m.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, m.MigrateUp())
	require.NoError(t, m.MigrateUp())

	version, err = m.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestMigrateUp_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := New(path)
	require.NoError(t, err)

	version, err := NewMigrator(s.db).CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	require.NoError(t, s.Put("k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)

	defer func() { _ = s.Close() }()

	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(v))
}
