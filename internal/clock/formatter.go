// Package clock turns an instant into the strings and hand angles a clock
// face displays, and resolves the zones it is displayed in.
package clock

import (
	"fmt"
	"time"

	"github.com/inovacc/clockr/internal/model"
)

// Reading is everything a display needs for one instant.
type Reading struct {
	Hour      string
	Minute    string
	Second    string
	DayPeriod string // "AM"/"PM" in 12-hour mode, empty otherwise
	Date      string
	HHMM      string // 24-hour "HH:MM", the alarm comparison key

	HourAngle   float64
	MinuteAngle float64
	SecondAngle float64
}

var dateLayouts = map[model.DateStyle]string{
	model.DateFull:   "Monday, January 2, 2006",
	model.DateLong:   "January 2, 2006",
	model.DateMedium: "Jan 2, 2006",
	model.DateShort:  "1/2/06",
}

// Format computes the reading for now in loc.
func Format(now time.Time, loc *time.Location, format model.HourFormat, style model.DateStyle) Reading {
	t := now.In(loc)
	h, m, s := t.Clock()

	r := Reading{
		Hour:   fmt.Sprintf("%02d", h),
		Minute: fmt.Sprintf("%02d", m),
		Second: fmt.Sprintf("%02d", s),
		Date:   FormatDate(t, style),
		HHMM:   fmt.Sprintf("%02d:%02d", h, m),
	}

	if format == model.Format12 {
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}

		r.Hour = fmt.Sprintf("%02d", h12)

		r.DayPeriod = "AM"
		if h >= 12 {
			r.DayPeriod = "PM"
		}
	}

	r.HourAngle, r.MinuteAngle, r.SecondAngle = HandAngles(h, m, s)

	return r
}

// FormatDate renders the date line in the given style. Unknown styles use full.
func FormatDate(t time.Time, style model.DateStyle) string {
	layout, ok := dateLayouts[style]
	if !ok {
		layout = dateLayouts[model.DateFull]
	}

	return t.Format(layout)
}

// HandAngles returns the hour, minute and second hand rotations in degrees
// clockwise from 12 o'clock. Hour and minute hands sweep between marks.
func HandAngles(h, m, s int) (hour, minute, second float64) {
	hour = float64(h%12)*30 + float64(m)*0.5
	minute = float64(m)*6 + float64(s)*0.1
	second = float64(s) * 6

	return hour, minute, second
}
