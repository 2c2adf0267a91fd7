// Package config resolves clockr's runtime options from flags, CLOCKR_*
// environment variables and an optional config.yaml, in that order of
// precedence. User-facing clock settings are not configuration; they live in
// the settings store.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inovacc/clockr/internal/application"
	"github.com/inovacc/clockr/internal/render"
	"github.com/inovacc/clockr/internal/store"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyConfigFile   = "config"
	KeyDataDir      = "data_dir"
	KeyStorage      = "storage"
	KeyTickInterval = "tick_interval"
	KeyLogLevel     = "log_level"
	KeyBell         = "bell"
	KeyAlarmCommand = "alarm_command"

	// MinTickInterval bounds how hard the render loop may spin.
	MinTickInterval = 10 * time.Millisecond
)

// Config holds the resolved runtime options.
type Config struct {
	// DataDir holds the settings database, config.yaml and the log file
	DataDir string

	// Storage is the settings backend, bolt or sqlite
	Storage string

	// TickInterval is the render loop cadence
	TickInterval time.Duration

	// LogLevel is the minimum level written to the log file
	LogLevel slog.Level

	// Bell rings the terminal bell when the alarm fires
	Bell bool

	// AlarmCommand is an optional player command run when the alarm fires
	AlarmCommand string
}

// RegisterFlags adds the persistent flags every command shares.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default <data-dir>/config.yaml)")
	flags.String("data-dir", "", "directory for settings, config and logs")
	flags.String("storage", store.BackendBolt, "settings backend: bolt or sqlite")
	flags.Duration("tick", render.DefaultInterval, "render loop interval")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
}

// New returns a viper instance with defaults, environment binding and the
// flags from RegisterFlags bound to their keys.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyStorage, store.BackendBolt)
	v.SetDefault(KeyTickInterval, render.DefaultInterval)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyBell, true)
	v.SetDefault(KeyAlarmCommand, "")

	v.SetEnvPrefix(application.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags == nil {
		return v, nil
	}

	bindings := map[string]string{
		KeyConfigFile:   "config",
		KeyDataDir:      "data-dir",
		KeyStorage:      "storage",
		KeyTickInterval: "tick",
		KeyLogLevel:     "log-level",
	}

	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	return v, nil
}

// Load resolves the data directory, reads the config file if one exists and
// validates the result.
func Load(v *viper.Viper) (Config, error) {
	dataDir := v.GetString(KeyDataDir)
	if dataDir == "" {
		def, err := application.GetApplicationDirectory()
		if err != nil {
			return Config{}, err
		}

		dataDir = def
	}

	cfgFile := v.GetString(KeyConfigFile)
	explicit := cfgFile != ""

	if !explicit {
		cfgFile = filepath.Join(dataDir, "config.yaml")
	}

	if _, err := os.Stat(cfgFile); err == nil {
		v.SetConfigFile(cfgFile)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}

		// the file may relocate the data directory unless a flag or env already did
		if d := v.GetString(KeyDataDir); d != "" {
			dataDir = d
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config file %s: %w", cfgFile, err)
	}

	cfg := Config{
		DataDir:      dataDir,
		Storage:      v.GetString(KeyStorage),
		TickInterval: v.GetDuration(KeyTickInterval),
		Bell:         v.GetBool(KeyBell),
		AlarmCommand: v.GetString(KeyAlarmCommand),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", v.GetString(KeyLogLevel), err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks option values that viper cannot type-check.
func (c Config) Validate() error {
	var errs []error

	if c.Storage != store.BackendBolt && c.Storage != store.BackendSQLite {
		errs = append(errs, fmt.Errorf("invalid storage %q (want %s or %s)", c.Storage, store.BackendBolt, store.BackendSQLite))
	}

	if c.TickInterval < MinTickInterval {
		errs = append(errs, fmt.Errorf("tick interval %s is below %s", c.TickInterval, MinTickInterval))
	}

	return errors.Join(errs...)
}
