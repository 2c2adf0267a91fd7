package cmd

import (
	"fmt"

	"github.com/inovacc/clockr/internal/cli"
	"github.com/inovacc/clockr/internal/clock"
	"github.com/spf13/cobra"
)

var zonesPick bool

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List selectable timezones",
	Long: `List the timezone catalog offered by the clock, marking the current one.

Any IANA name can be stored with "clockr settings set tz <name>"; the catalog
only lists common choices plus the system zone.

Examples:
  clockr zones
  clockr zones --pick`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.Flags().BoolVar(&zonesPick, "pick", false, "Choose the timezone interactively")
}

func runZones(cmd *cobra.Command, _ []string) error {
	s := env.settings.Load()
	zones := clock.Zones(env.localZone)

	if !zonesPick {
		for _, z := range zones {
			marker := " "
			if z == s.TZ {
				marker = "*"
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, z)
		}

		return nil
	}

	choice, err := cli.RunZonePicker(zones, s.TZ)
	if err != nil {
		return err
	}

	if choice == "" || choice == s.TZ {
		return nil
	}

	s.TZ = choice

	if err := env.settings.Save(s); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timezone set to %s\n", choice)

	return nil
}
