package cmd

import (
	"fmt"
	"time"

	"github.com/inovacc/clockr/internal/encoding"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/render"
	"github.com/inovacc/clockr/internal/settings"
	"github.com/spf13/cobra"
)

var (
	nowJSON   bool
	nowTZ     string
	nowFormat = newEnumValue("", string(model.Format12), string(model.Format24))
	nowDate   = newEnumValue("", string(model.DateFull), string(model.DateLong), string(model.DateMedium), string(model.DateShort))

	// nowFunc is replaced in tests
	nowFunc = time.Now
)

// nowReading is the JSON form printed by `clockr now --json`.
type nowReading struct {
	UTC         string  `json:"utc"`
	Hour        string  `json:"hour"`
	Minute      string  `json:"minute"`
	Second      string  `json:"second"`
	DayPeriod   string  `json:"dayPeriod,omitempty"`
	Date        string  `json:"date"`
	Zone        string  `json:"zone"`
	HourAngle   float64 `json:"hourAngle"`
	MinuteAngle float64 `json:"minuteAngle"`
	SecondAngle float64 `json:"secondAngle"`
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time once",
	Long: `Print the current time using the stored settings.

The timezone, hour format and date style can be overridden for this call
without changing the stored settings.

Examples:
  clockr now
  clockr now --tz Asia/Tokyo --format 12
  clockr now --json`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().BoolVar(&nowJSON, "json", false, "Output as JSON")
	nowCmd.Flags().StringVar(&nowTZ, "tz", "", "IANA timezone override")
	nowCmd.Flags().Var(nowFormat, "format", "Hour format override")
	nowCmd.Flags().Var(nowDate, "date", "Date style override")
}

func runNow(cmd *cobra.Command, _ []string) error {
	s := env.settings.Load()

	if nowTZ != "" {
		s.TZ = nowTZ
	}

	if f := nowFormat.String(); f != "" {
		s.Format = model.HourFormat(f)
	}

	if d := nowDate.String(); d != "" {
		s.DateStyle = model.DateStyle(d)
	}

	if err := settings.Validate(s); err != nil {
		return err
	}

	f := render.NewRenderer(nil).WithLogger(env.logger).Tick(cmd.Context(), nowFunc(), s)

	if !nowJSON {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Line(f, s))
		return err
	}

	data, err := encoding.ToJSONIndent(nowReading{
		UTC:         f.Now.UTC().Format(time.RFC3339),
		Hour:        f.Hour,
		Minute:      f.Minute,
		Second:      f.Second,
		DayPeriod:   f.DayPeriod,
		Date:        f.Date,
		Zone:        f.Zone,
		HourAngle:   f.HourAngle,
		MinuteAngle: f.MinuteAngle,
		SecondAngle: f.SecondAngle,
	})
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
