package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/notify"
	"github.com/spf13/cobra"
)

var errNoAlarmTime = errors.New("no alarm time set; use: clockr alarm set HH:MM")

var alarmCmd = &cobra.Command{
	Use:   "alarm",
	Short: "Manage the alarm",
	Long: `Manage the daily alarm.

The alarm fires once when the displayed minute equals the alarm time, ringing
the terminal bell and flashing the clock. It only fires while the clock runs.

Examples:
  clockr alarm set 07:30
  clockr alarm off
  clockr alarm status
  clockr alarm test`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var alarmSetCmd = &cobra.Command{
	Use:   "set <HH:MM>",
	Short: "Set the alarm time and enable it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateAlarm(cmd, func(a *model.Alarm) error {
			if args[0] == "" || !model.ValidAlarmTime(args[0]) {
				return &model.InvalidSettingError{Field: "alarm.time", Value: args[0], Reason: "want HH:MM"}
			}

			a.Time = args[0]
			a.Enabled = true

			return nil
		})
	},
}

var alarmOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the alarm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return updateAlarm(cmd, func(a *model.Alarm) error {
			if a.Time == "" {
				return errNoAlarmTime
			}

			a.Enabled = true

			return nil
		})
	},
}

var alarmOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the alarm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return updateAlarm(cmd, func(a *model.Alarm) error {
			a.Enabled = false
			return nil
		})
	},
}

var alarmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the alarm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printAlarm(cmd, env.settings.Load())
		return nil
	},
}

var alarmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Ring the alarm outputs once",
	Long: `Ring the terminal bell and run the alarm command once, the same way the
alarm does when it fires. Use it to check the bell and alarm_command settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		d := newAlarmOutputs(out, false)
		if !d.HasSenders() {
			_, _ = fmt.Fprintln(out, "No alarm outputs configured: the bell is off and alarm_command is empty.")
			return nil
		}

		s := env.settings.Load()

		e := notify.NewEvent(notify.EventTest)
		e.Zone = s.TZ
		e.AlarmTime = s.Alarm.Time
		e.Message = "Test alarm (" + s.TZ + ")"

		d.Dispatch(cmd.Context(), e)
		env.logger.Info("test alarm sent", "event", e.ID)

		_, _ = fmt.Fprintln(out, "Test alarm sent.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(alarmCmd)

	alarmCmd.AddCommand(alarmSetCmd)
	alarmCmd.AddCommand(alarmOnCmd)
	alarmCmd.AddCommand(alarmOffCmd)
	alarmCmd.AddCommand(alarmStatusCmd)
	alarmCmd.AddCommand(alarmTestCmd)
}

func updateAlarm(cmd *cobra.Command, fn func(*model.Alarm) error) error {
	s := env.settings.Load()

	if err := fn(&s.Alarm); err != nil {
		return err
	}

	if err := env.settings.Save(s); err != nil {
		return err
	}

	printAlarm(cmd, s)

	return nil
}

func printAlarm(cmd *cobra.Command, s model.Settings) {
	t := s.Alarm.Time
	if t == "" {
		t = "-"
	}

	printInfoBox(cmd.OutOrStdout(), "Alarm", map[string]string{
		"enabled":  strconv.FormatBool(s.Alarm.Enabled),
		"time":     t,
		"timezone": s.TZ,
	}, []string{"enabled", "time", "timezone"})
}
