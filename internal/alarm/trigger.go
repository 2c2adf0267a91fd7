// Package alarm decides when the configured alarm goes off.
package alarm

import "github.com/inovacc/clockr/internal/model"

// Trigger fires at most once per distinct minute string equal to the
// configured alarm time. It piggybacks on the caller's polling cadence and
// re-arms as soon as the minute string changes.
//
// The zero value is ready to use. Trigger is not safe for concurrent use.
type Trigger struct {
	last string
}

// Check reports whether the alarm fires for the current 24-hour "HH:MM".
func (t *Trigger) Check(current string, a model.Alarm) bool {
	// Leaving the fired minute re-arms, whether or not the alarm is enabled.
	if current != t.last {
		t.last = ""
	}

	if !a.Enabled || a.Time == "" || current != a.Time || current == t.last {
		return false
	}

	t.last = current

	return true
}

// Last returns the minute the alarm fired for while that minute lasts.
func (t *Trigger) Last() string {
	return t.last
}
