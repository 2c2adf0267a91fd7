package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStores(t *testing.T) map[string]Store {
	t.Helper()

	stores := make(map[string]Store)

	for _, backend := range []string{BackendBolt, BackendSQLite} {
		db, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("failed to open %s store: %v", backend, err)
		}

		t.Cleanup(func() {
			if err := db.Close(); err != nil {
				t.Logf("failed to close %s store: %v", backend, err)
			}
		})

		stores[backend] = db
	}

	return stores
}

func TestStore_Ping(t *testing.T) {
	for name, db := range setupTestStores(t) {
		if err := db.Ping(); err != nil {
			t.Errorf("%s: Ping() error = %v, want nil", name, err)
		}
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, db := range setupTestStores(t) {
		v, err := db.Get("clock.settings")
		require.NoError(t, err, name)
		assert.Nil(t, v, name)
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	for name, db := range setupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, db.Put("k", []byte(`{"theme":"light"}`)))

			v, err := db.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `{"theme":"light"}`, string(v))

			require.NoError(t, db.Put("k", []byte(`{"theme":"dark"}`)))

			v, err = db.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `{"theme":"dark"}`, string(v))

			require.NoError(t, db.Delete("k"))
			require.NoError(t, db.Delete("k"), "deleting an absent key is a no-op")

			v, err = db.Get("k")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	for _, backend := range []string{BackendBolt, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()

			db, err := Open(backend, dir)
			require.NoError(t, err)
			require.NoError(t, db.Put("k", []byte("v")))
			require.NoError(t, db.Close())

			db, err = Open(backend, dir)
			require.NoError(t, err)

			defer func() { _ = db.Close() }()

			v, err := db.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "v", string(v))
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	assert.Error(t, err)
}

func TestOpen_DefaultIsBolt(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("", dir)
	require.NoError(t, err)

	defer func() { _ = db.Close() }()

	_, ok := db.(*Bolt)
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(dir, "clockr.bolt"))
}
