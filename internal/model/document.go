package model

import "encoding/json"

// Document is the persisted shape of Settings with every field optional, so
// that a partial or older record can be told apart from explicit zero values.
type Document struct {
	Theme       *Theme         `json:"theme,omitempty"`
	Accent      *string        `json:"accent,omitempty"`
	FontSize    *int           `json:"fontSize,omitempty"`
	Mode        *DisplayMode   `json:"mode,omitempty"`
	TZ          *string        `json:"tz,omitempty"`
	Format      *HourFormat    `json:"format,omitempty"`
	ShowSeconds *bool          `json:"showSeconds,omitempty"`
	DateStyle   *DateStyle     `json:"dateStyle,omitempty"`
	Alarm       *AlarmDocument `json:"alarm,omitempty"`

	// malformed holds fields whose JSON type did not match.
	malformed []string
}

// AlarmDocument is the optional-field form of Alarm.
type AlarmDocument struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Time    *string `json:"time,omitempty"`
}

// UnmarshalJSON decodes each field on its own, so a value of the wrong JSON
// type drops only that field. The input must be a JSON object or null.
func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*d = Document{}

	decodeField(fields, "theme", &d.Theme, &d.malformed)
	decodeField(fields, "accent", &d.Accent, &d.malformed)
	decodeField(fields, "fontSize", &d.FontSize, &d.malformed)
	decodeField(fields, "mode", &d.Mode, &d.malformed)
	decodeField(fields, "tz", &d.TZ, &d.malformed)
	decodeField(fields, "format", &d.Format, &d.malformed)
	decodeField(fields, "showSeconds", &d.ShowSeconds, &d.malformed)
	decodeField(fields, "dateStyle", &d.DateStyle, &d.malformed)

	raw, ok := fields["alarm"]
	if !ok {
		return nil
	}

	var alarm map[string]json.RawMessage
	if err := json.Unmarshal(raw, &alarm); err != nil {
		d.malformed = append(d.malformed, "alarm")
		return nil
	}

	if alarm == nil {
		return nil
	}

	var bad []string

	d.Alarm = &AlarmDocument{}
	decodeField(alarm, "enabled", &d.Alarm.Enabled, &bad)
	decodeField(alarm, "time", &d.Alarm.Time, &bad)

	for _, name := range bad {
		d.malformed = append(d.malformed, "alarm."+name)
	}

	return nil
}

func decodeField[T any](fields map[string]json.RawMessage, name string, dst **T, malformed *[]string) {
	raw, ok := fields[name]
	if !ok {
		return
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		*dst = nil
		*malformed = append(*malformed, name)
	}
}

// Merge overlays the present and valid fields of d on def. The names of
// fields that were present but rejected are returned so callers can log them.
// The timezone is only checked for emptiness; see clock.LoadZone.
func (d Document) Merge(def Settings) (Settings, []string) {
	out := def

	var rejected []string

	reject := func(field string) { rejected = append(rejected, field) }

	if d.Theme != nil {
		if d.Theme.Valid() {
			out.Theme = *d.Theme
		} else {
			reject("theme")
		}
	}

	if d.Accent != nil {
		if ValidAccent(*d.Accent) {
			out.Accent = *d.Accent
		} else {
			reject("accent")
		}
	}

	if d.FontSize != nil {
		if ValidFontSize(*d.FontSize) {
			out.FontSize = *d.FontSize
		} else {
			reject("fontSize")
		}
	}

	if d.Mode != nil {
		if d.Mode.Valid() {
			out.Mode = *d.Mode
		} else {
			reject("mode")
		}
	}

	if d.TZ != nil {
		if *d.TZ != "" {
			out.TZ = *d.TZ
		} else {
			reject("tz")
		}
	}

	if d.Format != nil {
		if d.Format.Valid() {
			out.Format = *d.Format
		} else {
			reject("format")
		}
	}

	if d.ShowSeconds != nil {
		out.ShowSeconds = *d.ShowSeconds
	}

	if d.DateStyle != nil {
		if d.DateStyle.Valid() {
			out.DateStyle = *d.DateStyle
		} else {
			reject("dateStyle")
		}
	}

	if d.Alarm != nil {
		if d.Alarm.Enabled != nil {
			out.Alarm.Enabled = *d.Alarm.Enabled
		}

		if d.Alarm.Time != nil {
			if ValidAlarmTime(*d.Alarm.Time) {
				out.Alarm.Time = *d.Alarm.Time
			} else {
				reject("alarm.time")
			}
		}
	}

	return out, append(rejected, d.malformed...)
}
