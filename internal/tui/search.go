package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribeapp/scribe/internal/engine"
)

// searchView is the live-search overlay. Debouncing, request generations and
// stale-result discipline are the engine's; this just types and renders.
type searchView struct {
	app    *App
	eng    *engine.View
	input  textinput.Model
	cursor int
}

func newSearchView(a *App) *searchView {
	input := textinput.New()
	input.Prompt = "search> "
	input.Placeholder = "What are you interested in?"
	input.Cursor.Style = cursorStyle
	input.Focus()

	v := &searchView{app: a, eng: a.newEngineView(engine.ModeSearch, ""), input: input}
	v.eng.Start()
	return v
}

func (v *searchView) close() {
	v.eng.Close()
}

// update returns the navigation target when a result is opened, or "".
func (v *searchView) update(msg tea.KeyMsg) (string, tea.Cmd) {
	st := v.eng.State().Search
	keys := v.app.keys
	switch {
	case key.Matches(msg, keys.UpDown):
		if msg.String() == "up" && v.cursor > 0 {
			v.cursor--
		}
		if msg.String() == "down" && v.cursor < len(st.Results)-1 {
			v.cursor++
		}
		return "", nil
	case key.Matches(msg, keys.Enter):
		if st.Visibility == engine.Results && v.cursor < len(st.Results) {
			return "/post/" + st.Results[v.cursor].ID, nil
		}
		return "", nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.cursor = 0
		v.eng.Dispatch(engine.SearchTermChanged(after))
	}
	return "", cmd
}

func (v *searchView) render(width int) string {
	st := v.eng.State().Search

	var body string
	switch st.Visibility {
	case engine.Loading:
		body = mutedStyle.Render("Searching ...")
	case engine.Results:
		if len(st.Results) == 0 {
			body = mutedStyle.Render(fmt.Sprintf("Sorry, no results for %q.", st.Term))
			break
		}
		noun := "items"
		if len(st.Results) == 1 {
			noun = "item"
		}
		lines := []string{titleStyle.Render(fmt.Sprintf("Search Results (%d %s found)", len(st.Results), noun))}
		for i, r := range st.Results {
			line := fmt.Sprintf("%s %s", r.Title, resultAuthorStyle.Render("by "+r.Author.Username+" on "+formatDate(r.CreatedDate)))
			if i == v.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	default:
		body = mutedStyle.Render("Type to search. esc closes.")
	}

	v.input.Width = max(20, width-12)
	return overlayBoxStyle.Width(max(24, width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left, v.input.View(), "", body),
	)
}
