package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribeapp/scribe/internal/api"
)

// Profile tabs
const (
	tabPosts = iota
	tabFollowers
	tabFollowing
	tabCount
)

var tabLabels = [tabCount]string{"Posts", "Followers", "Following"}

// profileView shows a user's summary plus posts/followers/following tabs.
// Each tab's listing is fetched lazily and cancellably; everything stops when
// the view closes.
type profileView struct {
	app      *App
	username string
	ctx      context.Context
	cancel   context.CancelFunc

	profile *api.Profile
	loading bool

	tab       int
	posts     []api.Post
	followers []api.Follower
	following []api.Follower
	loaded    [tabCount]bool
	cursor    int

	followPending bool
}

func newProfileView(a *App, username string) *profileView {
	ctx, cancel := context.WithCancel(context.Background())
	return &profileView{app: a, username: username, ctx: ctx, cancel: cancel, loading: true}
}

func (v *profileView) close() {
	v.cancel()
}

func (v *profileView) load() tea.Cmd {
	return tea.Batch(v.loadProfile(), v.loadTab(tabPosts))
}

func (v *profileView) loadProfile() tea.Cmd {
	ctx, client, username := v.ctx, v.app.client, v.username
	b := v.app.bus
	return func() tea.Msg {
		profile, err := client.FetchProfile(ctx, username, b.Session().Token())
		if ctx.Err() != nil {
			return nil
		}
		return profileLoadedMsg{username: username, profile: profile, err: err}
	}
}

func (v *profileView) loadTab(tab int) tea.Cmd {
	ctx, client, username := v.ctx, v.app.client, v.username
	switch tab {
	case tabPosts:
		return func() tea.Msg {
			posts, err := client.ProfilePosts(ctx, username)
			if ctx.Err() != nil {
				return nil
			}
			return profilePostsMsg{username: username, posts: posts, err: err}
		}
	case tabFollowers:
		return func() tea.Msg {
			followers, err := client.ProfileFollowers(ctx, username)
			if ctx.Err() != nil {
				return nil
			}
			return profileFollowsMsg{username: username, tab: tabFollowers, followers: followers, err: err}
		}
	default:
		return func() tea.Msg {
			following, err := client.ProfileFollowing(ctx, username)
			if ctx.Err() != nil {
				return nil
			}
			return profileFollowsMsg{username: username, tab: tabFollowing, followers: following, err: err}
		}
	}
}

func (v *profileView) followCmd() tea.Cmd {
	ctx, client, username := v.ctx, v.app.client, v.username
	b := v.app.bus
	unfollow := v.profile != nil && v.profile.IsFollowing
	return func() tea.Msg {
		var err error
		if unfollow {
			err = client.Unfollow(ctx, username, b.Session().Token())
		} else {
			err = client.Follow(ctx, username, b.Session().Token())
		}
		if ctx.Err() != nil {
			return nil
		}
		return followToggledMsg{username: username, following: !unfollow, err: err}
	}
}

// canFollow mirrors the original client: logged in, not yourself.
func (v *profileView) canFollow() bool {
	sess := v.app.bus.Session()
	return sess.LoggedIn && sess.Username() != v.username && v.profile != nil && !v.followPending
}

func (v *profileView) listLen() int {
	switch v.tab {
	case tabPosts:
		return len(v.posts)
	case tabFollowers:
		return len(v.followers)
	default:
		return len(v.following)
	}
}

func (v *profileView) update(msg tea.KeyMsg) tea.Cmd {
	keys := v.app.keys
	switch {
	case key.Matches(msg, keys.NextTab):
		v.tab = (v.tab + 1) % tabCount
		v.cursor = 0
		if !v.loaded[v.tab] {
			return v.loadTab(v.tab)
		}
		return nil
	case key.Matches(msg, keys.Follow):
		if v.canFollow() {
			v.followPending = true
			return v.followCmd()
		}
		return nil
	case key.Matches(msg, keys.UpDown):
		if msg.String() == "up" && v.cursor > 0 {
			v.cursor--
		}
		if msg.String() == "down" && v.cursor < v.listLen()-1 {
			v.cursor++
		}
		return nil
	case key.Matches(msg, keys.Enter):
		switch v.tab {
		case tabPosts:
			if v.cursor < len(v.posts) {
				return v.app.navigate("/post/" + v.posts[v.cursor].ID)
			}
		case tabFollowers:
			if v.cursor < len(v.followers) {
				return v.app.navigate("/profile/" + v.followers[v.cursor].Username)
			}
		default:
			if v.cursor < len(v.following) {
				return v.app.navigate("/profile/" + v.following[v.cursor].Username)
			}
		}
	}
	return nil
}

func (v *profileView) render(width int) string {
	if v.loading || v.profile == nil {
		return mutedStyle.Render("Loading profile ...")
	}
	p := v.profile

	heading := titleStyle.Render(p.ProfileUsername)
	if v.canFollow() {
		if p.IsFollowing {
			heading += mutedStyle.Render("  [f unfollow]")
		} else {
			heading += mutedStyle.Render("  [f follow]")
		}
	}

	var tabs []string
	counts := [tabCount]int{p.Counts.PostCount, p.Counts.FollowerCount, p.Counts.FollowingCount}
	for i, label := range tabLabels {
		text := fmt.Sprintf("%s: %d", label, counts[i])
		if i == v.tab {
			tabs = append(tabs, tabActiveStyle.Render(text))
		} else {
			tabs = append(tabs, tabStyle.Render(text))
		}
	}

	var lines []string
	if !v.loaded[v.tab] {
		lines = append(lines, mutedStyle.Render("Loading ..."))
	} else {
		switch v.tab {
		case tabPosts:
			if len(v.posts) == 0 {
				lines = append(lines, mutedStyle.Render("No posts yet."))
			}
			for i, post := range v.posts {
				line := fmt.Sprintf("%s %s", post.Title, mutedStyle.Render("on "+formatDate(post.CreatedDate)))
				lines = append(lines, renderListLine(line, i == v.cursor))
			}
		case tabFollowers:
			if len(v.followers) == 0 {
				lines = append(lines, mutedStyle.Render("No followers."))
			}
			for i, f := range v.followers {
				lines = append(lines, renderListLine(f.Username, i == v.cursor))
			}
		default:
			if len(v.following) == 0 {
				lines = append(lines, mutedStyle.Render("Not following anyone."))
			}
			for i, f := range v.following {
				lines = append(lines, renderListLine(f.Username, i == v.cursor))
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func renderListLine(line string, selected bool) string {
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}
