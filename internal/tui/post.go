package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribeapp/scribe/internal/api"
)

// postView shows one post read-only, with edit/delete affordances for the
// owner. The fetch and delete calls are cancelled when the view closes; a
// response arriving afterwards is discarded by the id check in Update plus
// the cancelled context.
type postView struct {
	app        *App
	id         string
	ctx        context.Context
	cancel     context.CancelFunc
	loading    bool
	notFound   bool
	post       *api.Post
	confirming bool // delete armed, waiting for the second keypress
	deleting   bool
}

func newPostView(a *App, id string) *postView {
	ctx, cancel := context.WithCancel(context.Background())
	return &postView{app: a, id: id, ctx: ctx, cancel: cancel, loading: true}
}

func (v *postView) close() {
	v.cancel()
}

func (v *postView) load() tea.Cmd {
	ctx, client, id := v.ctx, v.app.client, v.id
	return func() tea.Msg {
		post, err := client.FetchPost(ctx, id)
		if ctx.Err() != nil {
			return nil
		}
		return postLoadedMsg{id: id, post: post, err: err}
	}
}

func (v *postView) deleteCmd() tea.Cmd {
	ctx, client, id := v.ctx, v.app.client, v.id
	b := v.app.bus
	return func() tea.Msg {
		// token read when the call fires, not when the view mounted
		err := client.DeletePost(ctx, id, b.Session().Token())
		if ctx.Err() != nil {
			return nil
		}
		return postDeletedMsg{id: id, err: err}
	}
}

func (v *postView) isOwner() bool {
	sess := v.app.bus.Session()
	return v.post != nil && sess.LoggedIn && sess.Username() == v.post.Author.Username
}

func (v *postView) update(msg tea.KeyMsg) tea.Cmd {
	keys := v.app.keys
	switch {
	case key.Matches(msg, keys.Edit):
		if v.isOwner() {
			return v.app.navigate("/post/" + v.id + "/edit")
		}
	case key.Matches(msg, keys.Delete):
		if !v.isOwner() || v.deleting {
			return nil
		}
		if !v.confirming {
			v.confirming = true
			return confirmTimerCmd()
		}
		v.confirming = false
		v.deleting = true
		return v.deleteCmd()
	case key.Matches(msg, keys.Enter):
		if v.post != nil {
			return v.app.navigate("/profile/" + v.post.Author.Username)
		}
	}
	return nil
}

func (v *postView) render(width int) string {
	switch {
	case v.loading:
		return mutedStyle.Render("Loading post ...")
	case v.notFound:
		return renderNotFound()
	case v.post == nil:
		return mutedStyle.Render("Loading post ...")
	}

	byline := mutedStyle.Render("Posted by " + v.post.Author.Username + " on " + formatDate(v.post.CreatedDate))

	sections := []string{
		titleStyle.Render(v.post.Title),
		byline,
		"",
		lipgloss.NewStyle().Width(max(20, width-4)).Render(v.post.Body),
		"",
	}
	switch {
	case v.deleting:
		sections = append(sections, savingStyle.Render("Deleting ..."))
	case v.confirming:
		sections = append(sections, errorStyle.Render("Press d again to delete this post"))
	case v.isOwner():
		sections = append(sections, mutedStyle.Render("e edit · d delete · enter author profile · esc back"))
	default:
		sections = append(sections, mutedStyle.Render("enter author profile · esc back"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
