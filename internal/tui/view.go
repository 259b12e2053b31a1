package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}

	header := a.renderHeader(width)
	body := a.renderBody(width)
	footer := a.renderFooter(width)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a *App) renderHeader(width int) string {
	left := headerStyle.Render(appName)
	sess := a.bus.Session()
	var right string
	if sess.LoggedIn {
		right = headerUserStyle.Render("@" + sess.Username())
	} else {
		right = mutedStyle.Render("not logged in · ctrl+l to log in")
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderBody(width int) string {
	var body string
	switch {
	case a.palette != nil:
		body = a.palette.render(width)
	case a.search != nil:
		body = a.search.render(width)
	default:
		switch a.route.name {
		case routeEdit:
			if a.editor != nil {
				body = a.editor.render(width)
			}
		case routePost:
			if a.post != nil {
				body = a.post.render(width)
			}
		case routeProfile:
			if a.profile != nil {
				body = a.profile.render(width)
			}
		case routeLogin:
			if a.login != nil {
				body = a.login.render()
			}
		default:
			body = a.renderHome()
		}
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (a *App) renderHome() string {
	sess := a.bus.Session()
	if sess.LoggedIn {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Hello "+sess.Username()+", your feed awaits."),
			"",
			mutedStyle.Render("ctrl+f search · ctrl+p commands"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Remember Writing?"),
		"",
		mutedStyle.Render("Write something worth reading. Log in to get started."),
		"",
		mutedStyle.Render("ctrl+l log in · ctrl+f search · ctrl+p commands"),
	)
}

func (a *App) renderFooter(width int) string {
	if len(a.flashes) > 0 {
		return flashStyle.Width(width).Render(a.flashes[0])
	}
	return footerStyle.Width(width).Render("ctrl+f search · ctrl+p commands · ctrl+c quit")
}

// formatDate renders the backend's timestamp the way the web client does:
// day-month-year. Unparseable input is shown as-is.
func formatDate(createdDate string) string {
	t, err := time.Parse(time.RFC3339, createdDate)
	if err != nil {
		return createdDate
	}
	return t.Format("2-1-2006")
}
