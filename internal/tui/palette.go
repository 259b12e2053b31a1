package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type command struct {
	id          string
	label       string
	description string
	enabled     func(a *App) bool
	run         func(a *App) tea.Cmd
}

type commandMatch struct {
	command command
	score   int
}

func commandAlwaysEnabled(*App) bool { return true }

func commandRegistry() []command {
	return []command{
		{
			id:          "nav:home",
			label:       "Go Home",
			description: "Back to the start screen",
			enabled:     commandAlwaysEnabled,
			run:         func(a *App) tea.Cmd { return a.navigate("/") },
		},
		{
			id:          "nav:search",
			label:       "Search Posts",
			description: "Open the live search overlay",
			enabled:     commandAlwaysEnabled,
			run: func(a *App) tea.Cmd {
				a.openSearch()
				return nil
			},
		},
		{
			id:          "nav:my-profile",
			label:       "My Profile",
			description: "Open your own profile",
			enabled:     func(a *App) bool { return a.bus.Session().LoggedIn },
			run: func(a *App) tea.Cmd {
				return a.navigate("/profile/" + a.bus.Session().Username())
			},
		},
		{
			id:          "session:login",
			label:       "Log In",
			description: "Open the login form",
			enabled:     func(a *App) bool { return !a.bus.Session().LoggedIn },
			run:         func(a *App) tea.Cmd { return a.navigate("/login") },
		},
		{
			id:          "session:logout",
			label:       "Log Out",
			description: "Discard the current session",
			enabled:     func(a *App) bool { return a.bus.Session().LoggedIn },
			run: func(a *App) tea.Cmd {
				a.bus.Logout()
				a.bus.Flash("You have successfully logged out.")
				return a.navigate("/")
			},
		},
		{
			id:          "post:edit",
			label:       "Edit This Post",
			description: "Edit the post you are viewing",
			enabled: func(a *App) bool {
				return a.route.name == routePost && a.post != nil && a.post.isOwner()
			},
			run: func(a *App) tea.Cmd {
				return a.navigate("/post/" + a.route.arg + "/edit")
			},
		},
		{
			id:          "app:quit",
			label:       "Quit",
			description: "Exit scribe",
			enabled:     commandAlwaysEnabled,
			run:         func(a *App) tea.Cmd { return tea.Quit },
		},
	}
}

// paletteView is the fuzzy command palette overlay.
type paletteView struct {
	input    textinput.Model
	commands []command
	matches  []commandMatch
	cursor   int
}

func newPaletteView(a *App) *paletteView {
	input := textinput.New()
	input.Prompt = "> "
	input.Cursor.Style = cursorStyle
	input.Focus()

	v := &paletteView{input: input, commands: commandRegistry()}
	v.rebuild(a)
	return v
}

func (v *paletteView) rebuild(a *App) {
	query := strings.TrimSpace(v.input.Value())
	v.matches = v.matches[:0]
	for _, cmd := range v.commands {
		if !cmd.enabled(a) {
			continue
		}
		matched, score := commandMatchScore(cmd, query)
		if !matched {
			continue
		}
		v.matches = append(v.matches, commandMatch{command: cmd, score: score})
	}
	sort.Slice(v.matches, func(i, j int) bool {
		if v.matches[i].score != v.matches[j].score {
			return v.matches[i].score > v.matches[j].score
		}
		return v.matches[i].command.label < v.matches[j].command.label
	})
	if v.cursor >= len(v.matches) {
		v.cursor = max(0, len(v.matches)-1)
	}
}

func commandMatchScore(cmd command, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{cmd.label, cmd.id, cmd.description} {
		matched, score := fuzzyMatchScore(field, query)
		if !matched {
			continue
		}
		if strings.EqualFold(field, query) {
			score += 15
		}
		if score > best {
			best = score
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, best
}

// fuzzyMatchScore requires query to be a subsequence of label; consecutive
// and prefix matches score higher, and near-identical strings (by edit
// distance) get a closeness bonus so "lgin" still ranks "Log In" first.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if closeness := 10 - levenshtein.ComputeDistance(queryLower, labelLower); closeness > 0 {
		score += closeness
	}
	return true, score
}

// update returns (handled command to run, close palette).
func (v *paletteView) update(msg tea.KeyMsg, a *App) (tea.Cmd, bool) {
	keys := a.keys
	switch {
	case key.Matches(msg, keys.UpDown):
		if msg.String() == "up" && v.cursor > 0 {
			v.cursor--
		}
		if msg.String() == "down" && v.cursor < len(v.matches)-1 {
			v.cursor++
		}
		return nil, false
	case key.Matches(msg, keys.Enter):
		if v.cursor < len(v.matches) {
			return v.matches[v.cursor].command.run(a), true
		}
		return nil, true
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.cursor = 0
		v.rebuild(a)
	}
	return cmd, false
}

func (v *paletteView) render(width int) string {
	lines := []string{v.input.View(), ""}
	if len(v.matches) == 0 {
		lines = append(lines, mutedStyle.Render("No matching commands."))
	}
	for i, m := range v.matches {
		line := m.command.label + "  " + mutedStyle.Render(m.command.description)
		if i == v.cursor {
			line = selectedStyle.Render("> " + m.command.label + "  " + m.command.description)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return overlayBoxStyle.Width(max(24, min(60, width-4))).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}
