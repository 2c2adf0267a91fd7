package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/clockr/internal/model"
)

// LinePrinter is the display used when stdout is not a terminal: it writes
// one line each time the visible text changes.
type LinePrinter struct {
	w    io.Writer
	last string
}

// NewLinePrinter creates a printer writing to w.
func NewLinePrinter(w io.Writer) *LinePrinter {
	return &LinePrinter{w: w}
}

// Print writes the frame if its text differs from the previous one.
func (p *LinePrinter) Print(f Frame, s model.Settings) error {
	line := Line(f, s)
	if line == p.last {
		return nil
	}

	p.last = line

	_, err := fmt.Fprintln(p.w, line)

	return err
}

// Line renders a frame as a single line of text honoring the display settings.
func Line(f Frame, s model.Settings) string {
	var b strings.Builder

	b.WriteString(f.Hour)
	b.WriteByte(':')
	b.WriteString(f.Minute)

	if s.ShowSeconds {
		b.WriteByte(':')
		b.WriteString(f.Second)
	}

	if f.DayPeriod != "" {
		b.WriteByte(' ')
		b.WriteString(f.DayPeriod)
	}

	b.WriteString("  ")
	b.WriteString(f.Date)
	b.WriteString("  ")
	b.WriteString(f.Zone)

	if s.ShowAnalog() {
		fmt.Fprintf(&b, "  [h %.1f° m %.1f° s %.0f°]", f.HourAngle, f.MinuteAngle, f.SecondAngle)
	}

	if f.AlarmFired {
		b.WriteString("  ALARM")
	} else if s.Alarm.Enabled && s.Alarm.Time != "" {
		b.WriteString("  alarm " + s.Alarm.Time)
	}

	return b.String()
}
