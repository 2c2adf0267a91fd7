package alarm

import (
	"testing"

	"github.com/inovacc/clockr/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTrigger_Debounce(t *testing.T) {
	var tr Trigger

	a := model.Alarm{Enabled: true, Time: "07:30"}

	assert.False(t, tr.Check("07:29", a))

	fired := 0
	for range 300 {
		if tr.Check("07:30", a) {
			fired++
		}
	}

	assert.Equal(t, 1, fired, "must fire exactly once within the minute")
	assert.Equal(t, "07:30", tr.Last())

	assert.False(t, tr.Check("07:31", a))
	assert.Equal(t, "", tr.Last())

	assert.True(t, tr.Check("07:30", a), "re-arms after the minute changes")
}

func TestTrigger_NoFire(t *testing.T) {
	tests := []struct {
		name    string
		current string
		alarm   model.Alarm
	}{
		{"disabled", "07:30", model.Alarm{Enabled: false, Time: "07:30"}},
		{"empty target", "07:30", model.Alarm{Enabled: true, Time: ""}},
		{"different minute", "07:31", model.Alarm{Enabled: true, Time: "07:30"}},
		{"12h string never matches", "7:30", model.Alarm{Enabled: true, Time: "07:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Trigger
			assert.False(t, tr.Check(tt.current, tt.alarm))
			assert.Empty(t, tr.Last())
		})
	}
}

func TestTrigger_ReenableWithinFiredMinute(t *testing.T) {
	var tr Trigger

	on := model.Alarm{Enabled: true, Time: "06:00"}
	off := model.Alarm{Enabled: false, Time: "06:00"}

	assert.True(t, tr.Check("06:00", on))
	assert.False(t, tr.Check("06:00", off))
	assert.False(t, tr.Check("06:00", on), "toggling within the fired minute must not fire again")
}

func TestTrigger_RearmsWhileDisabled(t *testing.T) {
	var tr Trigger

	on := model.Alarm{Enabled: true, Time: "06:00"}
	off := model.Alarm{Enabled: false, Time: "06:00"}

	assert.True(t, tr.Check("06:00", on))
	assert.False(t, tr.Check("06:01", off))
	assert.True(t, tr.Check("06:00", on), "next occurrence fires even if the alarm was off in between")
}
