// Package settings loads and persists the clock settings record.
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/inovacc/clockr/internal/clock"
	"github.com/inovacc/clockr/internal/encoding"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/store"
)

// DefaultExportName is the file name used when exporting without a path.
const DefaultExportName = "clock-settings.json"

// Store persists the single Settings record under model.SettingsKey.
type Store struct {
	db        store.Store
	localZone string
	logger    *slog.Logger
}

// New creates a settings store. localZone becomes the default timezone.
func New(db store.Store, localZone string) *Store {
	return &Store{
		db:        db,
		localZone: localZone,
		logger:    slog.Default(),
	}
}

// WithLogger sets the logger for the store
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	s.logger = logger
	return s
}

// Defaults returns the fixed default record.
func (s *Store) Defaults() model.Settings {
	return model.DefaultSettings(s.localZone)
}

// Validate checks every field, including that the zone database knows the timezone.
func Validate(v model.Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if _, err := clock.LoadZone(v.TZ); err != nil {
		return err
	}

	return nil
}

// Load returns the persisted record. It never fails: a missing, unreadable or
// corrupt document yields the defaults, and a partial one is completed from them.
func (s *Store) Load() model.Settings {
	def := s.Defaults()

	raw, err := s.db.Get(model.SettingsKey)
	if err != nil {
		s.logger.Warn("failed to read settings, using defaults", "error", err)
		return def
	}

	if raw == nil {
		s.logger.Debug("no stored settings, using defaults")
		return def
	}

	doc, err := encoding.ParseJSON[model.Document](raw)
	if err != nil {
		s.logger.Warn("stored settings are corrupt, using defaults", "error", err)
		return def
	}

	out, rejected := doc.Merge(def)
	if len(rejected) > 0 {
		s.logger.Warn("ignoring invalid stored settings fields", "fields", rejected)
	}

	if _, err := clock.LoadZone(out.TZ); err != nil {
		s.logger.Warn("stored timezone is not usable, using local zone", "tz", out.TZ, "error", err)
		out.TZ = def.TZ
	}

	return out
}

// Save validates and persists v.
func (s *Store) Save(v model.Settings) error {
	if err := Validate(v); err != nil {
		return err
	}

	data, err := encoding.ToJSON(v)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := s.db.Put(model.SettingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Reset clears the persisted record and returns the defaults.
func (s *Store) Reset() (model.Settings, error) {
	if err := s.db.Delete(model.SettingsKey); err != nil {
		return s.Defaults(), fmt.Errorf("failed to reset settings: %w", err)
	}

	s.logger.Info("settings reset to defaults")

	return s.Defaults(), nil
}

// Export writes v as a pretty-printed JSON document.
func (s *Store) Export(w io.Writer, v model.Settings) error {
	data, err := encoding.ToJSONIndent(v)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}

// ExportFile writes v to path; an empty path selects DefaultExportName.
// It returns the path written.
func (s *Store) ExportFile(path string, v model.Settings) (string, error) {
	if path == "" {
		path = DefaultExportName
	}

	data, err := encoding.ToJSONIndent(v)
	if err != nil {
		return "", err
	}

	if err := encoding.WriteFileAtomic(path, data, 0644); err != nil {
		return "", err
	}

	s.logger.Info("settings exported", "path", path)

	return path, nil
}

// Import reads an exported document, completes it from the defaults and
// saves it. Unlike Load, any invalid field rejects the whole document.
func (s *Store) Import(r io.Reader) (model.Settings, error) {
	doc, err := encoding.DecodeJSON[model.Document](r)
	if err != nil {
		return model.Settings{}, err
	}

	out, rejected := doc.Merge(s.Defaults())
	if len(rejected) > 0 {
		return model.Settings{}, fmt.Errorf("import rejected, invalid fields: %s", strings.Join(rejected, ", "))
	}

	if err := s.Save(out); err != nil {
		return model.Settings{}, err
	}

	s.logger.Info("settings imported")

	return out, nil
}
