// Package process finds other running clockr instances. Only one instance
// can hold the bolt settings file, so the CLI uses this to explain a lock
// timeout instead of failing with a bare error.
package process

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/gops/goprocess"
)

type Process struct {
	PID  int
	Exec string
	Path string
}

// FindOthers returns running Go processes named name, excluding this one.
func FindOthers(name string) []Process {
	return filterOthers(goprocess.FindAll(), name, os.Getpid())
}

func filterOthers(all []goprocess.P, name string, self int) []Process {
	var out []Process

	for _, p := range all {
		if p.PID == self || !matches(p, name) {
			continue
		}

		out = append(out, Process{PID: p.PID, Exec: p.Exec, Path: p.Path})
	}

	return out
}

func matches(p goprocess.P, name string) bool {
	exec := strings.TrimSuffix(strings.ToLower(p.Exec), ".exe")
	base := strings.TrimSuffix(strings.ToLower(filepath.Base(p.Path)), ".exe")
	name = strings.ToLower(name)

	return exec == name || base == name
}
