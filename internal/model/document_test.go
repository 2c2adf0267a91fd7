package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocument_Merge(t *testing.T) {
	def := DefaultSettings("UTC")

	tests := []struct {
		name         string
		raw          string
		want         func() Settings
		wantRejected []string
	}{
		{
			name: "empty object keeps defaults",
			raw:  `{}`,
			want: func() Settings { return def },
		},
		{
			name: "partial record fills the rest",
			raw:  `{"theme":"light","alarm":{"time":"07:30"}}`,
			want: func() Settings {
				s := def
				s.Theme = ThemeLight
				s.Alarm.Time = "07:30"
				return s
			},
		},
		{
			name: "explicit false is kept",
			raw:  `{"showSeconds":false,"alarm":{"enabled":false}}`,
			want: func() Settings {
				s := def
				s.ShowSeconds = false
				return s
			},
		},
		{
			name: "unknown fields ignored",
			raw:  `{"mode":"analog","volume":11}`,
			want: func() Settings {
				s := def
				s.Mode = ModeAnalog
				return s
			},
		},
		{
			name: "invalid fields fall back individually",
			raw:  `{"theme":"neon","fontSize":3,"format":"12","tz":"","accent":"red","alarm":{"time":"99:99"}}`,
			want: func() Settings {
				s := def
				s.Format = Format12
				return s
			},
			wantRejected: []string{"theme", "accent", "fontSize", "tz", "alarm.time"},
		},
		{
			name: "wrong JSON type drops only that field",
			raw:  `{"theme":"light","mode":"analog","fontSize":"72","alarm":{"enabled":"yes","time":"06:00"}}`,
			want: func() Settings {
				s := def
				s.Theme = ThemeLight
				s.Mode = ModeAnalog
				s.Alarm.Time = "06:00"
				return s
			},
			wantRejected: []string{"fontSize", "alarm.enabled"},
		},
		{
			name: "alarm that is not an object",
			raw:  `{"alarm":true,"format":"12"}`,
			want: func() Settings {
				s := def
				s.Format = Format12
				return s
			},
			wantRejected: []string{"alarm"},
		},
		{
			name: "null document keeps defaults",
			raw:  `null`,
			want: func() Settings { return def },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			if err := json.Unmarshal([]byte(tt.raw), &doc); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}

			got, rejected := doc.Merge(def)
			if diff := cmp.Diff(tt.want(), got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantRejected, rejected); diff != "" {
				t.Errorf("rejected mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument_UnmarshalRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"theme"`, `42`, `{not json`} {
		var doc Document
		if err := json.Unmarshal([]byte(raw), &doc); err == nil {
			t.Errorf("json.Unmarshal(%s) = nil, want error", raw)
		}
	}
}
