package settings

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"github.com/inovacc/clockr/internal/clock"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, store.Store) {
	t.Helper()

	db, err := store.Open(store.BackendBolt, t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(db, "Europe/Berlin").WithLogger(logger), db
}

func custom() model.Settings {
	return model.Settings{
		Theme:       model.ThemeLight,
		Accent:      "#ff8800",
		FontSize:    72,
		Mode:        model.ModeAnalog,
		TZ:          "America/New_York",
		Format:      model.Format12,
		ShowSeconds: false,
		DateStyle:   model.DateShort,
		Alarm:       model.Alarm{Enabled: true, Time: "07:30"},
	}
}

func TestLoad_EmptyStoreReturnsDefaults(t *testing.T) {
	s, _ := setupTestStore(t)

	if diff := cmp.Diff(model.DefaultSettings("Europe/Berlin"), s.Load()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptReturnsDefaults(t *testing.T) {
	s, db := setupTestStore(t)

	for _, raw := range []string{`{not json`, `[]`, `"theme"`} {
		require.NoError(t, db.Put(model.SettingsKey, []byte(raw)))
		assert.Equal(t, s.Defaults(), s.Load(), raw)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := setupTestStore(t)

	want := custom()
	require.NoError(t, s.Save(want))

	if diff := cmp.Diff(want, s.Load()); diff != "" {
		t.Errorf("Load() after Save() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialDocumentMerged(t *testing.T) {
	s, db := setupTestStore(t)

	require.NoError(t, db.Put(model.SettingsKey, []byte(`{"theme":"auto","alarm":{"enabled":true}}`)))

	want := s.Defaults()
	want.Theme = model.ThemeAuto
	want.Alarm.Enabled = true

	assert.Equal(t, want, s.Load())
}

func TestLoad_WrongTypedFieldKeepsOthers(t *testing.T) {
	s, db := setupTestStore(t)

	require.NoError(t, db.Put(model.SettingsKey, []byte(`{"theme":"light","mode":"analog","fontSize":"72"}`)))

	want := s.Defaults()
	want.Theme = model.ThemeLight
	want.Mode = model.ModeAnalog

	assert.Equal(t, want, s.Load())
}

func TestLoad_UnknownTimezoneFallsBack(t *testing.T) {
	s, db := setupTestStore(t)

	require.NoError(t, db.Put(model.SettingsKey, []byte(`{"tz":"Mars/Olympus_Mons","format":"12"}`)))

	got := s.Load()
	assert.Equal(t, "Europe/Berlin", got.TZ)
	assert.Equal(t, model.Format12, got.Format)
}

func TestSave_RejectsInvalid(t *testing.T) {
	s, db := setupTestStore(t)

	bad := custom()
	bad.TZ = "Atlantis/Capital"

	err := s.Save(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, clock.ErrInvalidTimezone))

	bad = custom()
	bad.Theme = "neon"

	var invalid *model.InvalidSettingError
	require.True(t, errors.As(s.Save(bad), &invalid))
	assert.Equal(t, "theme", invalid.Field)

	raw, err := db.Get(model.SettingsKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "rejected settings must not be persisted")
}

func TestReset(t *testing.T) {
	s, db := setupTestStore(t)

	require.NoError(t, s.Save(custom()))

	got, err := s.Reset()
	require.NoError(t, err)
	assert.Equal(t, s.Defaults(), got)

	raw, err := db.Get(model.SettingsKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "reset must clear the stored record")

	assert.Equal(t, s.Defaults(), s.Load())
}

func TestExport(t *testing.T) {
	s, _ := setupTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf, custom()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"theme\": \"light\",\n"), out)
	assert.Contains(t, out, "\"alarm\": {\n    \"enabled\": true,\n    \"time\": \"07:30\"\n  }")

	imported, err := s.Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, custom(), imported)
	assert.Equal(t, custom(), s.Load())
}

func TestExportFile(t *testing.T) {
	s, _ := setupTestStore(t)

	path := filepath.Join(t.TempDir(), DefaultExportName)

	written, err := s.ExportFile(path, custom())
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"tz\": \"America/New_York\"")
}

func TestImport_RejectsInvalidFields(t *testing.T) {
	s, db := setupTestStore(t)

	_, err := s.Import(strings.NewReader(`{"theme":"neon","fontSize":2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
	assert.Contains(t, err.Error(), "fontSize")

	_, err = s.Import(strings.NewReader(`{"theme":"light","fontSize":"72"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fontSize")

	_, err = s.Import(strings.NewReader(`{"tz":"Nowhere/Land"}`))
	assert.True(t, errors.Is(err, clock.ErrInvalidTimezone))

	raw, err := db.Get(model.SettingsKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
