// Package notify provides notification dispatching for clockr events.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event represents a notification event with all context needed for formatting.
type Event struct {
	// ID correlates log lines of one event across senders
	ID string

	// Type is the event type (alarm, test)
	Type string

	// Timestamp is when the event occurred
	Timestamp time.Time

	// Zone is the timezone the clock was displaying
	Zone string

	// AlarmTime is the configured "HH:MM" that matched
	AlarmTime string

	// Message is a short human-readable summary
	Message string
}

// Sender is the interface for notification senders.
type Sender interface {
	// Send delivers a notification for the given event.
	// Returns an error if the notification could not be delivered.
	Send(ctx context.Context, event *Event) error

	// Name returns the sender's name for logging purposes.
	Name() string
}

// Event types that can trigger notifications.
const (
	EventAlarm = "alarm"
	EventTest  = "test"
)

// NewEvent creates a new event with the given type and sets the timestamp.
func NewEvent(eventType string) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
	}
}

// NewAlarmEvent creates the event emitted when the alarm goes off.
func NewAlarmEvent(at time.Time, zone, alarmTime string) *Event {
	e := NewEvent(EventAlarm)
	e.Timestamp = at
	e.Zone = zone
	e.AlarmTime = alarmTime
	e.Message = "Alarm " + alarmTime + " (" + zone + ")"

	return e
}
