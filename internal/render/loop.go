// Package render drives the periodic clock update: a cancellable ticker loop
// and the per-tick computation it feeds to a display.
package render

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval keeps displayed seconds responsive without recomputing more
// than a few times per second.
const DefaultInterval = 200 * time.Millisecond

// Loop calls fn with the current time once on start and then every interval.
// Ticks that arrive while fn is still running are dropped, not queued.
type Loop struct {
	interval time.Duration
	fn       func(time.Time)
	now      func() time.Time
}

// NewLoop creates a loop; a non-positive interval selects DefaultInterval.
func NewLoop(interval time.Duration, fn func(time.Time)) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Loop{
		interval: interval,
		fn:       fn,
		now:      time.Now,
	}
}

// Interval returns the tick cadence.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Handle cancels a running loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs the loop in its own goroutine until ctx is done or Stop is called.
func (l *Loop) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)

	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go l.run(ctx, h.done)

	return h
}

func (l *Loop) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.fn(l.now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.fn(l.now())
		}
	}
}

// Stop cancels the loop and waits for the running tick to finish. It is safe
// to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
