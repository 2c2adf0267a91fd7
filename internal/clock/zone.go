package clock

import (
	"errors"
	"os"
	"slices"
	"strings"
	"time"
)

// curatedZones is the fixed zone list offered by the selector.
var curatedZones = []string{
	"UTC", "Europe/London", "Europe/Paris", "Europe/Berlin", "Europe/Moscow",
	"Asia/Kolkata", "Asia/Dubai", "Asia/Tokyo", "Asia/Shanghai", "Asia/Singapore",
	"Australia/Sydney", "Pacific/Auckland",
	"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles", "America/Sao_Paulo",
}

// LoadZone resolves an IANA zone name. "Local" is refused because it does not
// name a zone that survives being persisted and loaded on another machine.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, &InvalidTimezoneError{Name: name, Err: errors.New("empty name")}
	}

	if name == "Local" {
		return nil, &InvalidTimezoneError{Name: name, Err: errors.New("not an IANA name")}
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidTimezoneError{Name: name, Err: err}
	}

	return loc, nil
}

// LocalZoneName returns the IANA name of the system zone, falling back to UTC.
func LocalZoneName() string {
	return localZoneName(os.Getenv, os.Readlink, os.ReadFile)
}

func localZoneName(
	getenv func(string) string,
	readlink func(string) (string, error),
	readFile func(string) ([]byte, error),
) string {
	if tz := strings.TrimPrefix(getenv("TZ"), ":"); tz != "" {
		if name, ok := zoneFromPath(tz); ok {
			return name
		}
	}

	if target, err := readlink("/etc/localtime"); err == nil {
		if name, ok := zoneFromPath(target); ok {
			return name
		}
	}

	// Debian-style hosts and containers copy /etc/localtime instead of linking it.
	if data, err := readFile("/etc/timezone"); err == nil {
		if name, ok := zoneFromPath(strings.TrimSpace(string(data))); ok {
			return name
		}
	}

	return "UTC"
}

// zoneFromPath accepts a bare zone name or a path into a zoneinfo tree.
func zoneFromPath(p string) (string, bool) {
	name := p
	if i := strings.LastIndex(p, "zoneinfo/"); i >= 0 {
		name = p[i+len("zoneinfo/"):]
	}

	if _, err := LoadZone(name); err != nil {
		return "", false
	}

	return name, true
}

// Zones returns the curated zone list plus local, deduplicated and sorted.
func Zones(local string) []string {
	out := slices.Clone(curatedZones)
	if local != "" {
		out = append(out, local)
	}

	slices.Sort(out)

	return slices.Compact(out)
}
