package tui

import "github.com/scribeapp/scribe/internal/api"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

// engineMsg wakes the program after an engine store transition; the handler
// re-reads state. Coalescing several transitions into one wake is fine.
type engineMsg struct{}

// busMsg wakes the program to drain flash/navigation queues from the bus.
type busMsg struct{}

// flashExpiredMsg drops the oldest visible flash.
type flashExpiredMsg struct{}

// confirmExpiredMsg disarms a pending destructive confirmation.
type confirmExpiredMsg struct{}

type postLoadedMsg struct {
	id   string
	post *api.Post // nil means not found
	err  error
}

type postDeletedMsg struct {
	id  string
	err error
}

type profileLoadedMsg struct {
	username string
	profile  *api.Profile
	err      error
}

type profilePostsMsg struct {
	username string
	posts    []api.Post
	err      error
}

type profileFollowsMsg struct {
	username  string
	tab       int // tabFollowers or tabFollowing
	followers []api.Follower
	err       error
}

type followToggledMsg struct {
	username  string
	following bool // the new state on success
	err       error
}

type loginDoneMsg struct {
	user *api.User // nil means rejected credentials
	err  error
}
