package bus

import (
	"sync"
	"testing"

	"github.com/scribeapp/scribe/internal/api"
)

func TestSessionSnapshot(t *testing.T) {
	b := New()

	if got := b.Session(); got.LoggedIn || got.Token() != "" || got.Username() != "" {
		t.Fatalf("fresh bus must be logged out, got %+v", got)
	}

	b.Login(api.User{Username: "bob", Token: "tok"})
	snap := b.Session()
	if !snap.LoggedIn || snap.Token() != "tok" || snap.Username() != "bob" {
		t.Fatalf("login not reflected: %+v", snap)
	}

	// snapshots are point-in-time; logout must not change an old one
	b.Logout()
	if snap.Token() != "tok" {
		t.Fatal("earlier snapshot mutated by logout")
	}
	if b.Session().LoggedIn {
		t.Fatal("logout not reflected in fresh snapshot")
	}
}

func TestFlashDrainOrder(t *testing.T) {
	b := New()
	b.Flash("first")
	b.Flash("second")

	got := b.TakeFlashes()
	if len(got) != 2 || got[0].Text != "first" || got[1].Text != "second" {
		t.Fatalf("want [first second], got %v", got)
	}
	if again := b.TakeFlashes(); len(again) != 0 {
		t.Fatalf("second drain must be empty, got %v", again)
	}
}

func TestNavigationDrain(t *testing.T) {
	b := New()
	b.Navigate("/post/42")
	b.Navigate("/")

	got := b.TakeNavigations()
	if len(got) != 2 || got[0] != "/post/42" || got[1] != "/" {
		t.Fatalf("want [/post/42 /], got %v", got)
	}
	if again := b.TakeNavigations(); len(again) != 0 {
		t.Fatalf("second drain must be empty, got %v", again)
	}
}

func TestNotifyFiresOutsideLock(t *testing.T) {
	b := New()
	var calls int
	b.SetNotify(func() {
		// re-entering the bus from the callback must not deadlock
		b.Session()
		calls++
	})

	b.Flash("hi")
	b.Navigate("/")
	if calls != 2 {
		t.Fatalf("want 2 notify calls, got %d", calls)
	}
}

func TestConcurrentFlashes(t *testing.T) {
	b := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Flash("x")
		}()
	}
	wg.Wait()
	if got := len(b.TakeFlashes()); got != 50 {
		t.Fatalf("want 50 flashes, got %d", got)
	}
}
