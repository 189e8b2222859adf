// internal/report/tickclock.go

package report

import (
	"sync/atomic"
	"time"
)

// TickClock emits wall-clock ticks used to pace a replay and counts them
// atomically. It never drives the simulation itself.
type TickClock struct {
	Ch      chan struct{}
	count   atomic.Int64
	started atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewTickClock creates a clock but does not start it.
func NewTickClock(buffer int) *TickClock {
	return &TickClock{
		Ch:   make(chan struct{}, buffer),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start begins emitting ticks at the given interval. Only the first call
// has an effect.
func (c *TickClock) Start(interval time.Duration) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer func() {
			ticker.Stop()
			close(c.Ch)
			close(c.done)
		}()
		for {
			select {
			case <-ticker.C:
				c.count.Add(1)
				// NOTE: a slow reader must not block Stop, so the send also
				// watches the stop channel.
				select {
				case c.Ch <- struct{}{}:
				case <-c.stop:
					return
				}
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting ticks and waits for its goroutine.
// A clock that was never started is stopped immediately.
func (c *TickClock) Stop() {
	close(c.stop)
	if c.started.CompareAndSwap(false, true) {
		close(c.Ch)
		return
	}
	<-c.done
}

// Count returns the current tick count atomically.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
