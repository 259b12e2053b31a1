// Package bus carries the cross-view shared state: the login session and
// the outbound flash-message / navigation queues. It is passed explicitly to
// everything that needs it; nothing in the repository reaches for it through
// a global.
package bus

import (
	"sync"

	"github.com/scribeapp/scribe/internal/api"
)

// Session is a point-in-time snapshot of the login state. Effects must take
// a fresh snapshot when they fire, never hold one across a suspension.
type Session struct {
	LoggedIn bool
	User     *api.User
}

// Token returns the auth token, or "" when logged out.
func (s Session) Token() string {
	if !s.LoggedIn || s.User == nil {
		return ""
	}
	return s.User.Token
}

// Username returns the session user's name, or "" when logged out.
func (s Session) Username() string {
	if !s.LoggedIn || s.User == nil {
		return ""
	}
	return s.User.Username
}

// Flash is a fire-and-forget message for the user.
type Flash struct {
	Text string
}

// Bus is the global context bus. The session is mutated only here, by login
// and logout; every other component reads snapshots and appends requests.
type Bus struct {
	mu      sync.Mutex
	session Session
	flashes []Flash
	navs    []string
	notify  func()
}

func New() *Bus {
	return &Bus{}
}

// SetNotify registers a callback invoked (outside the bus lock) whenever a
// flash or navigation request is queued. The UI uses it to wake its event
// loop and drain.
func (b *Bus) SetNotify(fn func()) {
	b.mu.Lock()
	b.notify = fn
	b.mu.Unlock()
}

func (b *Bus) Session() Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Login installs the session user.
func (b *Bus) Login(user api.User) {
	b.mu.Lock()
	b.session = Session{LoggedIn: true, User: &user}
	b.mu.Unlock()
}

// Logout clears the session.
func (b *Bus) Logout() {
	b.mu.Lock()
	b.session = Session{}
	b.mu.Unlock()
}

// Flash queues a flash message.
func (b *Bus) Flash(text string) {
	b.mu.Lock()
	b.flashes = append(b.flashes, Flash{Text: text})
	fn := b.notify
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// TakeFlashes drains the queued flash messages.
func (b *Bus) TakeFlashes() []Flash {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.flashes
	b.flashes = nil
	return out
}

// Navigate queues a navigation request for a path such as "/post/42" or
// "/profile/bob". The bus does not interpret paths.
func (b *Bus) Navigate(path string) {
	b.mu.Lock()
	b.navs = append(b.navs, path)
	fn := b.notify
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// TakeNavigations drains the queued navigation requests.
func (b *Bus) TakeNavigations() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.navs
	b.navs = nil
	return out
}
