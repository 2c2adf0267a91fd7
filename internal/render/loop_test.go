package render

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_FiresImmediatelyAndRepeats(t *testing.T) {
	var ticks atomic.Int32

	first := make(chan struct{}, 1)

	l := NewLoop(10*time.Millisecond, func(time.Time) {
		if ticks.Add(1) == 1 {
			first <- struct{}{}
		}
	})

	h := l.Start(context.Background())

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("loop did not tick on start")
	}

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	h.Stop()
	h.Stop()

	stopped := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after Stop")
}

func TestLoop_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewLoop(time.Hour, func(time.Time) {}).Start(ctx)
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not exit on context cancel")
	}
}

func TestNewLoop_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewLoop(0, nil).Interval())
	assert.Equal(t, 200*time.Millisecond, DefaultInterval)
	assert.Equal(t, time.Second, NewLoop(time.Second, nil).Interval())
}
