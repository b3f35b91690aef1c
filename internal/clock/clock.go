// Package clock provides the timer primitives the simulation is driven by:
// one-shot and repeating callbacks with stop and reschedule support.
//
// Clock is a virtual, deterministic source advanced explicitly by its owner;
// Wall delivers callbacks from real time on runtime goroutines.
package clock

import (
	"sync"
	"time"
)

// Timer is a handle on a scheduled callback.
type Timer interface {
	// Stop cancels the timer. Stopping an inactive timer is a no-op.
	Stop()
	// Reset (re)arms the timer to fire after d. For repeating timers d also
	// becomes the new interval.
	Reset(d time.Duration)
	// Active reports whether the timer is armed.
	Active() bool
}

// Source creates timers.
type Source interface {
	// AfterFunc calls f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every interval until stopped. Panics if interval <= 0.
	Every(interval time.Duration, f func()) Timer
	// Now returns the current time of the source.
	Now() time.Time
}

// Epoch is the start time of every virtual Clock.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock is a virtual timer source. Time only moves when Advance is called;
// due timers fire in deadline order, ties in scheduling order. Callbacks run
// on the goroutine calling Advance, without the clock lock held, so they may
// schedule, reset or stop timers freely.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers map[*virtualTimer]struct{}
}

// New creates a virtual clock starting at Epoch.
func New() *Clock {
	return &Clock{
		now:    Epoch,
		timers: make(map[*virtualTimer]struct{}),
	}
}

type virtualTimer struct {
	c        *Clock
	f        func()
	deadline time.Time
	interval time.Duration // zero for one-shot timers
	seq      uint64
	active   bool
}

// Now returns the virtual time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns the virtual time passed since Epoch.
func (c *Clock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// AfterFunc schedules f to run once, d after the current virtual time.
func (c *Clock) AfterFunc(d time.Duration, f func()) Timer {
	t := &virtualTimer{c: c, f: f}
	t.Reset(d)
	return t
}

// Every schedules f to run each interval of virtual time.
func (c *Clock) Every(interval time.Duration, f func()) Timer {
	if interval <= 0 {
		panic("clock: non-positive interval for Every")
	}
	t := &virtualTimer{c: c, f: f, interval: interval}
	t.Reset(interval)
	return t
}

// Pending returns the number of armed timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves virtual time forward by d, firing every timer that comes due
// on the way, including timers scheduled by callbacks during the advance.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.deadline
		if next.interval > 0 {
			next.deadline = next.deadline.Add(next.interval)
			c.seq++
			next.seq = c.seq
		} else {
			next.active = false
			delete(c.timers, next)
		}
		f := next.f
		c.mu.Unlock()

		f()
	}
}

func (c *Clock) nextDueLocked(target time.Time) *virtualTimer {
	var best *virtualTimer
	for t := range c.timers {
		if t.deadline.After(target) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (t *virtualTimer) Stop() {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	t.active = false
	delete(t.c.timers, t)
}

func (t *virtualTimer) Reset(d time.Duration) {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.interval > 0 && d > 0 {
		t.interval = d
	}
	t.deadline = t.c.now.Add(d)
	t.c.seq++
	t.seq = t.c.seq
	t.active = true
	t.c.timers[t] = struct{}{}
}

func (t *virtualTimer) Active() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	return t.active
}
