package cmd

import (
	"fmt"

	"github.com/inovacc/clockr/internal/cli"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the clock settings in a form",
	Long: `Interactively edit the accent color, font size, timezone and alarm.

Display toggles such as theme and mode are changed with keys inside the
running clock or with "clockr settings set".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		saved, err := cli.RunConfigure(env.settings)
		if err != nil {
			return err
		}

		if !saved {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
