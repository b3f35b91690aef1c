package clock

import (
	"sync"
	"time"
)

// Wall is a real-time Source. Callbacks run on runtime goroutines, so the
// receiver of the callbacks must serialize its own state.
type Wall struct{}

// Now returns the wall-clock time.
func (Wall) Now() time.Time { return time.Now() }

// AfterFunc calls f once on its own goroutine after d.
func (Wall) AfterFunc(d time.Duration, f func()) Timer {
	t := &wallTimer{f: f}
	t.Reset(d)
	return t
}

// Every calls f every interval until stopped.
func (Wall) Every(interval time.Duration, f func()) Timer {
	if interval <= 0 {
		panic("clock: non-positive interval for Every")
	}
	t := &wallTicker{f: f}
	t.Reset(interval)
	return t
}

type wallTimer struct {
	mu     sync.Mutex
	f      func()
	t      *time.Timer
	active bool
	gen    uint64
}

func (w *wallTimer) Reset(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.t != nil {
		w.t.Stop()
	}
	w.gen++
	gen := w.gen
	w.active = true
	w.t = time.AfterFunc(d, func() {
		w.mu.Lock()
		if gen != w.gen || !w.active {
			w.mu.Unlock()
			return
		}
		w.active = false
		w.mu.Unlock()
		w.f()
	})
}

func (w *wallTimer) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.t != nil {
		w.t.Stop()
	}
	w.active = false
}

func (w *wallTimer) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

type wallTicker struct {
	mu     sync.Mutex
	f      func()
	ticker *time.Ticker
	done   chan struct{}
}

func (w *wallTicker) Reset(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
	w.ticker = time.NewTicker(d)
	w.done = make(chan struct{})
	go w.loop(w.ticker, w.done)
}

func (w *wallTicker) loop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			select {
			case <-done:
				return
			default:
			}
			w.f()
		case <-done:
			return
		}
	}
}

func (w *wallTicker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *wallTicker) stopLocked() {
	if w.done == nil {
		return
	}
	w.ticker.Stop()
	close(w.done)
	w.done = nil
}

func (w *wallTicker) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done != nil
}
