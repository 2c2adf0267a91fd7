package clock

import (
	"errors"
	"slices"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZone(t *testing.T) {
	for _, name := range []string{"UTC", "Europe/Berlin", "America/Sao_Paulo", "Pacific/Auckland"} {
		loc, err := LoadZone(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, loc.String())
	}
}

func TestLoadZone_Invalid(t *testing.T) {
	for _, name := range []string{"", "Local", "Mars/Olympus_Mons", "../etc/passwd"} {
		_, err := LoadZone(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidTimezone), "errors.Is(%q)", name)

		var tzErr *InvalidTimezoneError
		require.True(t, errors.As(err, &tzErr))
		assert.Equal(t, name, tzErr.Name)
	}
}

func TestLocalZoneName(t *testing.T) {
	noLink := func(string) (string, error) { return "", errors.New("no link") }
	noFile := func(string) ([]byte, error) { return nil, errors.New("no file") }
	file := func(v string) func(string) ([]byte, error) {
		return func(string) ([]byte, error) { return []byte(v), nil }
	}
	env := func(v string) func(string) string {
		return func(string) string { return v }
	}

	tests := []struct {
		name     string
		getenv   func(string) string
		readlink func(string) (string, error)
		readFile func(string) ([]byte, error)
		want     string
	}{
		{"TZ name", env("Asia/Tokyo"), noLink, noFile, "Asia/Tokyo"},
		{"TZ with colon", env(":Europe/Paris"), noLink, noFile, "Europe/Paris"},
		{"TZ path", env("/usr/share/zoneinfo/America/Denver"), noLink, noFile, "America/Denver"},
		{
			"symlink",
			env(""),
			func(string) (string, error) { return "/usr/share/zoneinfo/Europe/Moscow", nil },
			noFile,
			"Europe/Moscow",
		},
		{
			"invalid TZ falls through to symlink",
			env("Nowhere/Land"),
			func(string) (string, error) { return "../usr/share/zoneinfo/Asia/Dubai", nil },
			file("Europe/London\n"),
			"Asia/Dubai",
		},
		{"copied localtime uses /etc/timezone", env(""), noLink, file("America/Chicago\n"), "America/Chicago"},
		{"garbage /etc/timezone", env(""), noLink, file("not a zone"), "UTC"},
		{"nothing", env(""), noLink, noFile, "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localZoneName(tt.getenv, tt.readlink, tt.readFile))
		})
	}
}

func TestZones(t *testing.T) {
	zones := Zones("UTC")
	assert.Len(t, zones, len(curatedZones))
	assert.True(t, slices.IsSorted(zones))

	zones = Zones("Asia/Seoul")
	assert.Len(t, zones, len(curatedZones)+1)
	assert.Contains(t, zones, "Asia/Seoul")
	assert.True(t, slices.IsSorted(zones))

	for _, z := range zones {
		_, err := LoadZone(z)
		assert.NoError(t, err, z)
	}
}
