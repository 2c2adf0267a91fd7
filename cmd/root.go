package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/inovacc/clockr/internal/application"
	"github.com/inovacc/clockr/internal/clock"
	"github.com/inovacc/clockr/internal/config"
	"github.com/inovacc/clockr/internal/logging"
	"github.com/inovacc/clockr/internal/params"
	"github.com/inovacc/clockr/internal/process"
	"github.com/inovacc/clockr/internal/settings"
	"github.com/inovacc/clockr/internal/store"
	"github.com/spf13/cobra"
)

// skipSetup marks commands that need neither the data directory nor the store.
const skipSetup = "clockr/skip-setup"

// runtimeEnv is what PersistentPreRunE prepares for every command.
type runtimeEnv struct {
	cfg       config.Config
	dataDir   string
	localZone string
	db        store.Store
	settings  *settings.Store
	logFile   *os.File
	logger    *slog.Logger
}

var env *runtimeEnv

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A terminal clock",
	Long: `clockr shows a digital and analog clock in the terminal.

The display follows a persisted settings record: theme, accent color, size,
display mode, timezone, 12/24 hour format, seconds, date style and an alarm.
Running clockr without a command starts the clock.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runClock,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()
	shutdown()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	addRunFlags(rootCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetup] != "" || cmd.Name() == "help" {
		return nil
	}

	v, err := config.New(cmd.Flags())
	if err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	dir, err := params.EnsureAppdataDir(cfg.DataDir)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(dir, cfg.LogLevel)
	if err != nil {
		return err
	}

	logger := slog.Default()

	db, err := store.Open(cfg.Storage, dir)
	if err != nil {
		_ = logFile.Close()
		return explainOpenFailure(err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		_ = logFile.Close()

		return fmt.Errorf("settings store unavailable: %w", err)
	}

	localZone := clock.LocalZoneName()

	env = &runtimeEnv{
		cfg:       cfg,
		dataDir:   dir,
		localZone: localZone,
		db:        db,
		settings:  settings.New(db, localZone).WithLogger(logger),
		logFile:   logFile,
		logger:    logger,
	}

	logger.Debug("clockr started",
		"command", cmd.CommandPath(),
		"data_dir", dir,
		"storage", cfg.Storage,
		"local_zone", localZone,
	)

	return nil
}

// explainOpenFailure points at a running instance when one holds the database.
func explainOpenFailure(err error) error {
	others := process.FindOthers(application.AppExeName)
	if len(others) == 0 {
		return err
	}

	return fmt.Errorf("%w (another %s is running, pid %d)", err, application.AppName, others[0].PID)
}

func shutdown() {
	if env == nil {
		return
	}

	var errs []error

	if env.db != nil {
		errs = append(errs, env.db.Close())
	}

	if env.logFile != nil {
		errs = append(errs, env.logFile.Close())
	}

	if err := errors.Join(errs...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
	}

	env = nil
}
