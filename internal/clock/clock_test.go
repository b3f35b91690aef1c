package clock

import (
	"reflect"
	"testing"
	"time"
)

func TestAfterFuncFiresAtDeadline(t *testing.T) {
	c := New()
	fired := 0
	timer := c.AfterFunc(100*time.Millisecond, func() { fired++ })

	c.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("timer fired early")
	}
	if !timer.Active() {
		t.Error("timer should be active before its deadline")
	}

	c.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, expected 1", fired)
	}
	if timer.Active() {
		t.Error("one-shot timer should be inactive after firing")
	}

	c.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot timer fired again: %d", fired)
	}
}

func TestEveryRepeats(t *testing.T) {
	c := New()
	fired := 0
	timer := c.Every(10*time.Millisecond, func() { fired++ })

	c.Advance(55 * time.Millisecond)
	if fired != 5 {
		t.Errorf("fired = %d, expected 5", fired)
	}

	timer.Stop()
	c.Advance(100 * time.Millisecond)
	if fired != 5 {
		t.Errorf("stopped ticker kept firing: %d", fired)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := New()
	timer := c.AfterFunc(time.Second, func() {})

	timer.Stop()
	timer.Stop()
	if timer.Active() {
		t.Error("timer should be inactive after Stop")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestResetReschedules(t *testing.T) {
	c := New()
	fired := 0
	timer := c.AfterFunc(100*time.Millisecond, func() { fired++ })

	c.Advance(80 * time.Millisecond)
	timer.Reset(100 * time.Millisecond)

	c.Advance(80 * time.Millisecond)
	if fired != 0 {
		t.Fatal("reset timer fired at its old deadline")
	}
	c.Advance(20 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}

	// A fired one-shot can be re-armed.
	timer.Reset(10 * time.Millisecond)
	c.Advance(10 * time.Millisecond)
	if fired != 2 {
		t.Errorf("fired = %d after re-arm, expected 2", fired)
	}
}

func TestResetChangesInterval(t *testing.T) {
	c := New()
	fired := 0
	timer := c.Every(100*time.Millisecond, func() { fired++ })

	timer.Reset(50 * time.Millisecond)
	c.Advance(200 * time.Millisecond)
	if fired != 4 {
		t.Errorf("fired = %d, expected 4", fired)
	}
}

func TestFiringOrder(t *testing.T) {
	c := New()
	var order []string
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b1") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })

	c.Advance(time.Second)

	expected := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestCallbackSeesDeadlineTime(t *testing.T) {
	c := New()
	var at time.Duration
	c.AfterFunc(40*time.Millisecond, func() { at = c.Elapsed() })

	c.Advance(100 * time.Millisecond)
	if at != 40*time.Millisecond {
		t.Errorf("callback ran at %v, expected 40ms", at)
	}
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 100ms", c.Elapsed())
	}
}

func TestCallbacksMayScheduleAndStop(t *testing.T) {
	c := New()
	var order []string
	var ticker Timer

	ticker = c.Every(10*time.Millisecond, func() {
		order = append(order, "tick")
		if len(order) == 2 {
			ticker.Stop()
			c.AfterFunc(5*time.Millisecond, func() { order = append(order, "after") })
		}
	})

	c.Advance(100 * time.Millisecond)

	expected := []string{"tick", "tick", "after"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestEveryPanicsOnZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) should panic")
		}
	}()
	New().Every(0, func() {})
}

func TestWallAfterFunc(t *testing.T) {
	done := make(chan struct{})
	timer := Wall{}.AfterFunc(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("wall timer did not fire")
	}
	if timer.Active() {
		t.Error("wall one-shot should be inactive after firing")
	}
	timer.Stop()
}

func TestWallEveryStop(t *testing.T) {
	ticks := make(chan struct{}, 16)
	timer := Wall{}.Every(2*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("wall ticker did not fire")
		}
	}

	timer.Stop()
	timer.Stop()
	if timer.Active() {
		t.Error("wall ticker should be inactive after Stop")
	}
}
