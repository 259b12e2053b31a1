package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribeapp/scribe/internal/engine"
)

const (
	editorFocusTitle = 0
	editorFocusBody  = 1
)

// editorView hosts one engine view in edit mode. The inputs are presentation
// only: every keystroke is forwarded as a field-changed action, focus changes
// as field-blurred, ctrl+s as submit-requested; fetching, validation gating,
// saving and cancellation all happen inside the engine.
type editorView struct {
	app    *App
	id     string
	eng    *engine.View
	title  textinput.Model
	body   textarea.Model
	focus  int
	synced bool // fetched values copied into the inputs
}

func newEditorView(a *App, id string) *editorView {
	title := textinput.New()
	title.Prompt = ""
	title.Focus()

	body := textarea.New()
	body.Prompt = ""
	body.ShowLineNumbers = false

	v := &editorView{
		app:   a,
		id:    id,
		eng:   a.newEngineView(engine.ModeEdit, id),
		title: title,
		body:  body,
	}
	v.eng.Start()
	return v
}

func (v *editorView) close() {
	v.eng.Close()
}

// sync copies fetched field values into the inputs, once. Afterwards the
// inputs are the source of keystrokes and the engine the source of truth.
func (v *editorView) sync() {
	if v.synced {
		return
	}
	st := v.eng.State()
	if st.Lifecycle != engine.Ready {
		return
	}
	v.title.SetValue(st.Fields[engine.FieldTitle].Value)
	v.body.SetValue(st.Fields[engine.FieldBody].Value)
	v.synced = true
}

func (v *editorView) update(msg tea.KeyMsg) tea.Cmd {
	keys := v.app.keys
	switch {
	case key.Matches(msg, keys.Save):
		v.eng.Dispatch(engine.SubmitRequested())
		return nil
	case key.Matches(msg, keys.NextField):
		if v.focus == editorFocusTitle {
			v.eng.Dispatch(engine.FieldBlurred(engine.FieldTitle))
			v.title.Blur()
			v.body.Focus()
			v.focus = editorFocusBody
		} else {
			v.eng.Dispatch(engine.FieldBlurred(engine.FieldBody))
			v.body.Blur()
			v.title.Focus()
			v.focus = editorFocusTitle
		}
		return nil
	}

	var cmd tea.Cmd
	if v.focus == editorFocusTitle {
		before := v.title.Value()
		v.title, cmd = v.title.Update(msg)
		if after := v.title.Value(); after != before {
			v.eng.Dispatch(engine.FieldChanged(engine.FieldTitle, after))
		}
	} else {
		before := v.body.Value()
		v.body, cmd = v.body.Update(msg)
		if after := v.body.Value(); after != before {
			v.eng.Dispatch(engine.FieldChanged(engine.FieldBody, after))
		}
	}
	return cmd
}

func (v *editorView) render(width int) string {
	st := v.eng.State()
	switch st.Lifecycle {
	case engine.Fetching:
		return mutedStyle.Render("Loading post ...")
	case engine.NotFound:
		return renderNotFound()
	}

	v.title.Width = max(20, width-4)
	v.body.SetWidth(max(20, width-4))

	sections := []string{
		titleStyle.Render("Edit Post"),
		"",
		labelStyle.Render("Title"),
		v.title.View(),
	}
	if f := st.Fields[engine.FieldTitle]; f.HasErrors {
		sections = append(sections, errorStyle.Render(f.Message))
	}
	sections = append(sections,
		"",
		labelStyle.Render("Body Content"),
		v.body.View(),
	)
	if f := st.Fields[engine.FieldBody]; f.HasErrors {
		sections = append(sections, errorStyle.Render(f.Message))
	}

	switch st.Lifecycle {
	case engine.Saving:
		sections = append(sections, "", savingStyle.Render("Saving ..."))
	case engine.SaveError:
		sections = append(sections, "", errorStyle.Render("Save failed. ctrl+s to retry"))
	default:
		sections = append(sections, "", mutedStyle.Render("ctrl+s save · tab switch field · esc back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderNotFound() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Can not find that page"),
		mutedStyle.Render("esc to go back home"),
	)
}
