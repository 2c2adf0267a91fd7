package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/clockr/internal/encoding"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/settings"
	"github.com/spf13/cobra"
)

var (
	settingsShowJSON bool
	settingsResetYes bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change the clock settings",
	Long: `Show and change the persisted clock settings.

Available Commands:
  show         Print the current settings
  set          Change one setting
  reset        Restore the defaults
  export       Write the settings as JSON
  import       Load settings from an exported file

Keys:
  theme, accent, fontSize, mode, tz, format, showSeconds, dateStyle,
  alarm.enabled, alarm.time

Examples:
  clockr settings show
  clockr settings set theme light
  clockr settings set tz America/New_York
  clockr settings export backup.json
  clockr settings import backup.json`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := env.settings.Load()

		if settingsShowJSON {
			return env.settings.Export(cmd.OutOrStdout(), s)
		}

		items := make(map[string]string, len(model.Keys))

		for _, k := range model.Keys {
			v, err := s.Get(k)
			if err != nil {
				return err
			}

			if v == "" {
				v = "-"
			}

			items[k] = v
		}

		printInfoBox(cmd.OutOrStdout(), "Clock Settings", items, model.Keys)

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := env.settings.Load()

		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}

		if err := env.settings.Save(s); err != nil {
			return err
		}

		v, _ := s.Get(args[0])
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)

		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !settingsResetYes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Reset all clock settings? [y/N]: ") {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		if _, err := env.settings.Reset(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults.")

		return nil
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export [file|-]",
	Short: "Write the settings as JSON",
	Long: fmt.Sprintf(`Write the current settings as a pretty-printed JSON document.

Without an argument the file %s is written to the current directory;
"-" writes to stdout.`, settings.DefaultExportName),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := env.settings.Load()

		if len(args) == 1 && args[0] == "-" {
			return env.settings.Export(cmd.OutOrStdout(), s)
		}

		path := settings.DefaultExportName

		if len(args) == 1 {
			p, err := expandPath(args[0])
			if err != nil {
				return err
			}

			path = p
		}

		written, err := env.settings.ExportFile(path, s)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported settings to %s\n", written)

		return nil
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Load settings from an exported file",
	Long: `Load settings from a JSON document written by export.

Missing fields take their default values. Any invalid field rejects the
whole document and the stored settings are left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()

		if args[0] != "-" {
			path, err := expandPath(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			in = f
		}

		s, err := env.settings.Import(in)
		if err != nil {
			return err
		}

		data, err := encoding.ToJSONIndent(s)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported settings:\n%s", data)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsImportCmd)

	settingsShowCmd.Flags().BoolVar(&settingsShowJSON, "json", false, "Output as JSON")
	settingsResetCmd.Flags().BoolVarP(&settingsResetYes, "yes", "y", false, "Skip confirmation")
}
