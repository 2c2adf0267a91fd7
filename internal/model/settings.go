package model

// SettingsKey is the storage key the settings document is persisted under.
const SettingsKey = "clock.settings"

// Theme selects the color scheme of the clock.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto" // follow the terminal background
)

// DisplayMode selects which clock panels are shown.
type DisplayMode string

const (
	ModeBoth    DisplayMode = "both"
	ModeDigital DisplayMode = "digital"
	ModeAnalog  DisplayMode = "analog"
)

// HourFormat is the 12/24-hour display preference.
type HourFormat string

const (
	Format12 HourFormat = "12"
	Format24 HourFormat = "24"
)

// DateStyle controls how verbose the date line is.
type DateStyle string

const (
	DateFull   DateStyle = "full"
	DateLong   DateStyle = "long"
	DateMedium DateStyle = "medium"
	DateShort  DateStyle = "short"
)

const (
	DefaultAccent   = "#5b9dff"
	DefaultFontSize = 40

	MinFontSize = 12
	MaxFontSize = 120
)

// Alarm holds the alarm configuration.
type Alarm struct {
	// Enabled arms the alarm
	Enabled bool `json:"enabled"`

	// Time is the target wall time as "HH:MM" (24-hour); empty means unset
	Time string `json:"time"`
}

// Settings is the single per-client settings record.
type Settings struct {
	// Theme is the color theme
	Theme Theme `json:"theme"`

	// Accent is the accent color as a hex string
	Accent string `json:"accent"`

	// FontSize scales the digital display
	FontSize int `json:"fontSize"`

	// Mode selects the visible panels
	Mode DisplayMode `json:"mode"`

	// TZ is the IANA timezone used for all time computation
	TZ string `json:"tz"`

	// Format is the hour display format
	Format HourFormat `json:"format"`

	// ShowSeconds toggles the seconds digits
	ShowSeconds bool `json:"showSeconds"`

	// DateStyle is the date line verbosity
	DateStyle DateStyle `json:"dateStyle"`

	// Alarm is the alarm configuration
	Alarm Alarm `json:"alarm"`
}

// DefaultSettings returns the fixed default record for the given local zone.
func DefaultSettings(localZone string) Settings {
	return Settings{
		Theme:       ThemeDark,
		Accent:      DefaultAccent,
		FontSize:    DefaultFontSize,
		Mode:        ModeBoth,
		TZ:          localZone,
		Format:      Format24,
		ShowSeconds: true,
		DateStyle:   DateFull,
		Alarm:       Alarm{Enabled: false, Time: ""},
	}
}

// ShowDigital reports whether the digital panel is visible.
func (s Settings) ShowDigital() bool {
	return s.Mode != ModeAnalog
}

// ShowAnalog reports whether the analog panel is visible.
func (s Settings) ShowAnalog() bool {
	return s.Mode != ModeDigital
}

var (
	themeCycle     = []Theme{ThemeDark, ThemeLight, ThemeAuto}
	modeCycle      = []DisplayMode{ModeBoth, ModeDigital, ModeAnalog}
	dateStyleCycle = []DateStyle{DateFull, DateLong, DateMedium, DateShort}
)

// Next returns the theme following t in selector order.
func (t Theme) Next() Theme {
	return next(themeCycle, t)
}

// Next returns the display mode following m in selector order.
func (m DisplayMode) Next() DisplayMode {
	return next(modeCycle, m)
}

// Next returns the date style following d in selector order.
func (d DateStyle) Next() DateStyle {
	return next(dateStyleCycle, d)
}

// Toggle flips between 12 and 24 hour formats.
func (f HourFormat) Toggle() HourFormat {
	if f == Format12 {
		return Format24
	}

	return Format12
}

func next[T comparable](cycle []T, cur T) T {
	for i, v := range cycle {
		if v == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}

	return cycle[0]
}
