package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/clockr/internal/alarm"
	"github.com/inovacc/clockr/internal/clock"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/notify"
)

// Frame is one computed tick, ready to paint.
type Frame struct {
	clock.Reading

	Now        time.Time
	Zone       string
	AlarmFired bool
}

// Renderer computes frames and owns the alarm fire state. It keeps the last
// resolved zone so the zone database is only consulted when the tz setting
// changes. Renderer is not safe for concurrent use; call Tick from one goroutine.
type Renderer struct {
	trigger    alarm.Trigger
	requested  string
	zoneName   string
	loc        *time.Location
	dispatcher *notify.Dispatcher
	logger     *slog.Logger
}

// NewRenderer creates a renderer. A nil dispatcher disables alarm side effects
// other than Frame.AlarmFired.
func NewRenderer(dispatcher *notify.Dispatcher) *Renderer {
	return &Renderer{
		dispatcher: dispatcher,
		loc:        time.UTC,
		zoneName:   "UTC",
		logger:     slog.Default(),
	}
}

// WithLogger sets the logger for the renderer
func (r *Renderer) WithLogger(logger *slog.Logger) *Renderer {
	r.logger = logger
	return r
}

// Tick computes the frame for now under s and runs the alarm check.
func (r *Renderer) Tick(ctx context.Context, now time.Time, s model.Settings) Frame {
	r.resolveZone(s.TZ)

	reading := clock.Format(now, r.loc, s.Format, s.DateStyle)

	f := Frame{
		Reading: reading,
		Now:     now,
		Zone:    r.zoneName,
	}

	if r.trigger.Check(reading.HHMM, s.Alarm) {
		f.AlarmFired = true

		if r.dispatcher != nil {
			r.dispatcher.Dispatch(ctx, notify.NewAlarmEvent(now, r.zoneName, s.Alarm.Time))
		}
	}

	return f
}

// resolveZone switches zones when the setting changes. Settings are validated
// before they are applied, so a failure here keeps the previous zone.
func (r *Renderer) resolveZone(name string) {
	if name == r.requested {
		return
	}

	r.requested = name

	loc, err := clock.LoadZone(name)
	if err != nil {
		r.logger.Warn("keeping previous timezone", "requested", name, "current", r.zoneName, "error", err)
		return
	}

	r.zoneName = name
	r.loc = loc
}
