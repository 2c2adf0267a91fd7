// Package model defines the settings record shared by every clockr component.
//
// # Settings
//
// The [Settings] struct is the single per-client record. It is persisted as
// one JSON document under [SettingsKey]:
//
//	type Settings struct {
//	    Theme       Theme       // dark, light or auto
//	    Accent      string      // accent color, #rrggbb
//	    FontSize    int         // digital display size
//	    Mode        DisplayMode // both, digital or analog
//	    TZ          string      // IANA timezone name
//	    Format      HourFormat  // "12" or "24"
//	    ShowSeconds bool        // seconds digits visible
//	    DateStyle   DateStyle   // full, long, medium or short
//	    Alarm       Alarm       // {Enabled, Time "HH:MM"}
//	}
//
// # Loading partial records
//
// Stored documents are decoded into [Document], whose fields are all
// optional, and merged over [DefaultSettings] field by field. A missing or
// invalid field never leaves a zero value behind.
package model
