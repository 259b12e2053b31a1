package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case engineMsg:
		if a.editor != nil {
			a.editor.sync()
		}
		return a, a.listen()

	case busMsg:
		return a, tea.Batch(append(a.drainBus(), a.listen())...)

	case flashExpiredMsg:
		if len(a.flashes) > 0 {
			a.flashes = a.flashes[1:]
		}
		return a, nil

	case confirmExpiredMsg:
		if a.post != nil {
			a.post.confirming = false
		}
		return a, nil

	case postLoadedMsg:
		return a.handlePostLoaded(msg)
	case postDeletedMsg:
		return a.handlePostDeleted(msg)
	case profileLoadedMsg:
		return a.handleProfileLoaded(msg)
	case profilePostsMsg:
		return a.handleProfilePosts(msg)
	case profileFollowsMsg:
		return a.handleProfileFollows(msg)
	case followToggledMsg:
		return a.handleFollowToggled(msg)
	case loginDoneMsg:
		return a.handleLoginDone(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// drainBus turns queued flash and navigation requests into model changes.
func (a *App) drainBus() []tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range a.bus.TakeFlashes() {
		a.flashes = append(a.flashes, f.Text)
		cmds = append(cmds, flashTimerCmd())
	}
	for _, path := range a.bus.TakeNavigations() {
		if cmd := a.navigate(path); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (a *App) openSearch() {
	if a.search == nil {
		a.search = newSearchView(a)
	}
}

func (a *App) closeSearch() {
	if a.search != nil {
		a.search.close()
		a.search = nil
	}
}

// handleKey routes keys by overlay precedence: palette, then search, then
// the active screen.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := a.keys

	if key.Matches(msg, keys.Quit) {
		return a, tea.Quit
	}

	if a.palette != nil {
		if key.Matches(msg, keys.Back) {
			a.palette = nil
			return a, nil
		}
		cmd, done := a.palette.update(msg, a)
		if done {
			a.palette = nil
		}
		return a, cmd
	}
	if key.Matches(msg, keys.Palette) {
		a.palette = newPaletteView(a)
		return a, nil
	}

	if a.search != nil {
		if key.Matches(msg, keys.Back) {
			a.closeSearch()
			return a, nil
		}
		target, cmd := a.search.update(msg)
		if target != "" {
			a.closeSearch()
			return a, a.navigate(target)
		}
		return a, cmd
	}
	if key.Matches(msg, keys.Search) {
		a.openSearch()
		return a, nil
	}

	switch a.route.name {
	case routeEdit:
		if key.Matches(msg, keys.Back) {
			return a, a.navigate("/post/" + a.route.arg)
		}
		if a.editor != nil {
			return a, a.editor.update(msg)
		}
	case routePost:
		if key.Matches(msg, keys.Back) {
			return a, a.navigate("/")
		}
		if a.post != nil {
			return a, a.post.update(msg)
		}
	case routeProfile:
		if key.Matches(msg, keys.Back) {
			return a, a.navigate("/")
		}
		if a.profile != nil {
			return a, a.profile.update(msg)
		}
	case routeLogin:
		if key.Matches(msg, keys.Back) {
			return a, a.navigate("/")
		}
		if a.login != nil {
			return a, a.login.update(msg, a)
		}
	default:
		if key.Matches(msg, keys.Login) && !a.bus.Session().LoggedIn {
			return a, a.navigate("/login")
		}
	}
	return a, nil
}

func (a *App) handlePostLoaded(msg postLoadedMsg) (tea.Model, tea.Cmd) {
	if a.post == nil || a.post.id != msg.id {
		return a, nil // stale: the view it belongs to is gone
	}
	if msg.err != nil {
		// stay on the loading screen; the user can navigate away
		a.log.Error().Err(msg.err).Str("post", msg.id).Msg("post fetch failed")
		return a, nil
	}
	a.post.loading = false
	if msg.post == nil {
		a.post.notFound = true
		return a, nil
	}
	a.post.post = msg.post
	return a, nil
}

func (a *App) handlePostDeleted(msg postDeletedMsg) (tea.Model, tea.Cmd) {
	if a.post == nil || a.post.id != msg.id {
		return a, nil
	}
	a.post.deleting = false
	if msg.err != nil {
		a.log.Error().Err(msg.err).Str("post", msg.id).Msg("delete failed")
		a.bus.Flash("Could not delete the post.")
		return a, nil
	}
	a.bus.Flash("Post deleted!")
	return a, a.navigate("/profile/" + a.bus.Session().Username())
}

func (a *App) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	if a.profile == nil || a.profile.username != msg.username {
		return a, nil
	}
	if msg.err != nil {
		a.log.Error().Err(msg.err).Str("user", msg.username).Msg("profile fetch failed")
		return a, nil
	}
	a.profile.loading = false
	a.profile.profile = msg.profile
	return a, nil
}

func (a *App) handleProfilePosts(msg profilePostsMsg) (tea.Model, tea.Cmd) {
	if a.profile == nil || a.profile.username != msg.username {
		return a, nil
	}
	if msg.err != nil {
		a.log.Error().Err(msg.err).Str("user", msg.username).Msg("profile posts fetch failed")
		return a, nil
	}
	a.profile.posts = msg.posts
	a.profile.loaded[tabPosts] = true
	return a, nil
}

func (a *App) handleProfileFollows(msg profileFollowsMsg) (tea.Model, tea.Cmd) {
	if a.profile == nil || a.profile.username != msg.username {
		return a, nil
	}
	if msg.err != nil {
		a.log.Error().Err(msg.err).Str("user", msg.username).Msg("follow list fetch failed")
		return a, nil
	}
	if msg.tab == tabFollowers {
		a.profile.followers = msg.followers
	} else {
		a.profile.following = msg.followers
	}
	a.profile.loaded[msg.tab] = true
	return a, nil
}

func (a *App) handleFollowToggled(msg followToggledMsg) (tea.Model, tea.Cmd) {
	if a.profile == nil || a.profile.username != msg.username {
		return a, nil
	}
	a.profile.followPending = false
	if msg.err != nil {
		a.log.Error().Err(msg.err).Str("user", msg.username).Msg("follow toggle failed")
		return a, nil
	}
	if p := a.profile.profile; p != nil {
		p.IsFollowing = msg.following
		if msg.following {
			p.Counts.FollowerCount++
		} else {
			p.Counts.FollowerCount--
		}
	}
	// the follower list is stale now; refetch lazily next time
	a.profile.loaded[tabFollowers] = false
	return a, nil
}

func (a *App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if a.login != nil {
		a.login.pending = false
	}
	if msg.err != nil {
		a.log.Error().Err(msg.err).Msg("login failed")
		a.bus.Flash("Could not reach the server.")
		return a, nil
	}
	if msg.user == nil {
		a.bus.Flash("Invalid username / password.")
		return a, nil
	}
	a.bus.Login(*msg.user)
	a.bus.Flash("You have successfully logged in.")
	return a, a.navigate("/")
}
