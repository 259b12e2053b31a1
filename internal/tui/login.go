package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribeapp/scribe/internal/api"
)

type loginView struct {
	username textinput.Model
	password textinput.Model
	focus    int
	pending  bool
}

func newLoginView() *loginView {
	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "Username"
	username.Focus()

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	return &loginView{username: username, password: password}
}

func loginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := client.Login(context.Background(), username, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (v *loginView) update(msg tea.KeyMsg, a *App) tea.Cmd {
	keys := a.keys
	switch {
	case key.Matches(msg, keys.NextField):
		if v.focus == 0 {
			v.username.Blur()
			v.password.Focus()
			v.focus = 1
		} else {
			v.password.Blur()
			v.username.Focus()
			v.focus = 0
		}
		return nil
	case key.Matches(msg, keys.Enter):
		u := strings.TrimSpace(v.username.Value())
		p := v.password.Value()
		if v.pending || u == "" || p == "" {
			return nil
		}
		v.pending = true
		return loginCmd(a.client, u, p)
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return cmd
}

func (v *loginView) render() string {
	status := mutedStyle.Render("tab switch field · enter log in · esc back")
	if v.pending {
		status = savingStyle.Render("Logging in ...")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Log In"),
		"",
		labelStyle.Render("Username"),
		v.username.View(),
		"",
		labelStyle.Render("Password"),
		v.password.View(),
		"",
		status,
	)
}
