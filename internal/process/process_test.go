package process

import (
	"testing"

	"github.com/google/gops/goprocess"
	"github.com/stretchr/testify/assert"
)

func TestFilterOthers(t *testing.T) {
	all := []goprocess.P{
		{PID: 10, Exec: "clockr", Path: "/usr/local/bin/clockr"},
		{PID: 11, Exec: "clockr", Path: "/usr/local/bin/clockr"},
		{PID: 12, Exec: "gopls", Path: "/home/u/go/bin/gopls"},
		{PID: 13, Exec: "CLOCKR.EXE", Path: `C:\bin\CLOCKR.EXE`},
		{PID: 14, Exec: "renamed", Path: "/opt/clockr"},
	}

	got := filterOthers(all, "clockr", 10)

	var pids []int
	for _, p := range got {
		pids = append(pids, p.PID)
	}

	assert.Equal(t, []int{11, 13, 14}, pids)
}

func TestFindOthers_NoMatch(t *testing.T) {
	assert.Empty(t, FindOthers("clockr-test-no-such-binary"))
}
