package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesRapidInput(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var fires atomic.Int32
	var last atomic.Value
	for _, term := range []string{"d", "do", "dog", "dogs"} {
		term := term
		d.Trigger(func() {
			fires.Add(1)
			last.Store(term)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(400 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Fatalf("fires = %d, want exactly 1", got)
	}
	if got := last.Load(); got != "dogs" {
		t.Errorf("fired value = %v, want the last input %q", got, "dogs")
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fires atomic.Int32
	d.Trigger(func() { fires.Add(1) })
	d.Cancel()

	time.Sleep(200 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d after Cancel, want 0", got)
	}

	// cancel does not shut the debouncer down
	d.Trigger(func() { fires.Add(1) })
	time.Sleep(200 * time.Millisecond)
	if got := fires.Load(); got != 1 {
		t.Fatalf("fires = %d after re-trigger, want 1", got)
	}
}

func TestDebouncerStopIsPermanent(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fires atomic.Int32
	d.Trigger(func() { fires.Add(1) })
	d.Stop()
	d.Trigger(func() { fires.Add(1) })

	time.Sleep(200 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d after Stop, want 0", got)
	}
}

func TestDebouncerZeroDelayUsesDefault(t *testing.T) {
	d := NewDebouncer(0)
	defer d.Stop()
	if d.delay != DefaultQuiescence {
		t.Fatalf("delay = %v, want %v", d.delay, DefaultQuiescence)
	}
}
