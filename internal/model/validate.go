package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// InvalidSettingError reports a settings field holding an unacceptable value.
type InvalidSettingError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidSettingError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
	}

	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight || t == ThemeAuto
}

func (m DisplayMode) Valid() bool {
	return m == ModeBoth || m == ModeDigital || m == ModeAnalog
}

func (f HourFormat) Valid() bool {
	return f == Format12 || f == Format24
}

func (d DateStyle) Valid() bool {
	return d == DateFull || d == DateLong || d == DateMedium || d == DateShort
}

// ValidAccent reports whether s is a #rgb or #rrggbb color.
func ValidAccent(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}

	_, err := colorful.Hex(strings.ToLower(s))

	return err == nil
}

// ValidFontSize reports whether n is within the supported range.
func ValidFontSize(n int) bool {
	return n >= MinFontSize && n <= MaxFontSize
}

// ValidAlarmTime reports whether s is empty or a 24-hour "HH:MM" string.
func ValidAlarmTime(s string) bool {
	if s == "" {
		return true
	}

	if len(s) != 5 {
		return false
	}

	_, err := time.Parse("15:04", s)

	return err == nil
}

// Validate checks every field except the timezone, which needs the zone
// database and is checked by the clock package.
func (s Settings) Validate() error {
	switch {
	case !s.Theme.Valid():
		return &InvalidSettingError{Field: "theme", Value: string(s.Theme), Reason: "want dark, light or auto"}
	case !ValidAccent(s.Accent):
		return &InvalidSettingError{Field: "accent", Value: s.Accent, Reason: "want #rgb or #rrggbb"}
	case !ValidFontSize(s.FontSize):
		return &InvalidSettingError{
			Field:  "fontSize",
			Value:  strconv.Itoa(s.FontSize),
			Reason: fmt.Sprintf("want %d..%d", MinFontSize, MaxFontSize),
		}
	case !s.Mode.Valid():
		return &InvalidSettingError{Field: "mode", Value: string(s.Mode), Reason: "want both, digital or analog"}
	case s.TZ == "":
		return &InvalidSettingError{Field: "tz", Value: s.TZ, Reason: "empty"}
	case !s.Format.Valid():
		return &InvalidSettingError{Field: "format", Value: string(s.Format), Reason: "want 12 or 24"}
	case !s.DateStyle.Valid():
		return &InvalidSettingError{Field: "dateStyle", Value: string(s.DateStyle), Reason: "want full, long, medium or short"}
	case !ValidAlarmTime(s.Alarm.Time):
		return &InvalidSettingError{Field: "alarm.time", Value: s.Alarm.Time, Reason: "want HH:MM"}
	}

	return nil
}

// Keys lists the names accepted by Set, in display order.
var Keys = []string{
	"theme", "accent", "fontSize", "mode", "tz", "format",
	"showSeconds", "dateStyle", "alarm.enabled", "alarm.time",
}

// Set assigns one field from its textual form. The receiver is left
// untouched when the value does not parse or validate.
func (s *Settings) Set(key, value string) error {
	next := *s

	switch key {
	case "theme":
		next.Theme = Theme(value)
	case "accent":
		next.Accent = strings.ToLower(value)
	case "fontSize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &InvalidSettingError{Field: key, Value: value, Reason: "not an integer"}
		}

		next.FontSize = n
	case "mode":
		next.Mode = DisplayMode(value)
	case "tz":
		next.TZ = value
	case "format":
		next.Format = HourFormat(value)
	case "showSeconds":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &InvalidSettingError{Field: key, Value: value, Reason: "not a boolean"}
		}

		next.ShowSeconds = b
	case "dateStyle":
		next.DateStyle = DateStyle(value)
	case "alarm.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &InvalidSettingError{Field: key, Value: value, Reason: "not a boolean"}
		}

		next.Alarm.Enabled = b
	case "alarm.time":
		next.Alarm.Time = value
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*s = next

	return nil
}

// Get returns the textual form of one field.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "theme":
		return string(s.Theme), nil
	case "accent":
		return s.Accent, nil
	case "fontSize":
		return strconv.Itoa(s.FontSize), nil
	case "mode":
		return string(s.Mode), nil
	case "tz":
		return s.TZ, nil
	case "format":
		return string(s.Format), nil
	case "showSeconds":
		return strconv.FormatBool(s.ShowSeconds), nil
	case "dateStyle":
		return string(s.DateStyle), nil
	case "alarm.enabled":
		return strconv.FormatBool(s.Alarm.Enabled), nil
	case "alarm.time":
		return s.Alarm.Time, nil
	}

	return "", fmt.Errorf("unknown setting %q", key)
}
