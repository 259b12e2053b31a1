// Package tui is the terminal front end. It owns presentation only: every
// asynchronous concern of the interactive views (fetching, saving, search
// debouncing, cancellation) lives in internal/engine; the TUI dispatches
// actions and renders state.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/scribeapp/scribe/internal/api"
	"github.com/scribeapp/scribe/internal/bus"
	"github.com/scribeapp/scribe/internal/config"
	"github.com/scribeapp/scribe/internal/engine"
)

const appName = "Scribe"

// route names
const (
	routeHome    = "home"
	routePost    = "post"
	routeEdit    = "edit"
	routeProfile = "profile"
	routeLogin   = "login"
)

type route struct {
	name string
	arg  string // post id or username, depending on the route
}

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	client *api.Client
	bus    *bus.Bus
	log    zerolog.Logger
	keys   keyMap

	width  int
	height int

	route   route
	editor  *editorView
	post    *postView
	profile *profileView
	login   *loginView

	// overlays; search covers the body, palette covers everything
	search  *searchView
	palette *paletteView

	flashes []string

	// events carries wake-ups from engine stores and the bus into the
	// program loop. Sends are non-blocking: a dropped wake-up coalesces
	// with one already queued.
	events chan tea.Msg
}

func NewApp(cfg config.Config, client *api.Client, b *bus.Bus, log zerolog.Logger) *App {
	a := &App{
		cfg:    cfg,
		client: client,
		bus:    b,
		log:    log.With().Str("component", "tui").Logger(),
		keys:   newKeyMap(),
		route:  route{name: routeHome},
		events: make(chan tea.Msg, 64),
	}
	b.SetNotify(func() { a.wake(busMsg{}) })
	return a
}

func (a *App) wake(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

// listen re-arms after every delivered event.
func (a *App) listen() tea.Cmd {
	return func() tea.Msg { return <-a.events }
}

func (a *App) Init() tea.Cmd {
	return a.listen()
}

// newEngineView builds an engine view wired to this app's client, bus and
// debounce window, waking the program on every transition.
func (a *App) newEngineView(mode engine.Mode, resourceID string) *engine.View {
	v := engine.NewView(engine.Config{
		Mode:       mode,
		ResourceID: resourceID,
		Client:     a.client,
		Bus:        a.bus,
		Quiescence: time.Duration(a.cfg.Search.DebounceMS) * time.Millisecond,
		Logger:     a.log,
	})
	v.Store().Subscribe(func(_, _ engine.ViewState, _ engine.Action) {
		a.wake(engineMsg{})
	})
	return v
}

// closeRoute tears down the current screen; in-flight work is cancelled.
func (a *App) closeRoute() {
	if a.editor != nil {
		a.editor.close()
		a.editor = nil
	}
	if a.post != nil {
		a.post.close()
		a.post = nil
	}
	if a.profile != nil {
		a.profile.close()
		a.profile = nil
	}
	a.login = nil
}

// navigate switches routes. Paths use the backend's shapes: "/",
// "/post/{id}", "/post/{id}/edit", "/profile/{username}", "/login".
func (a *App) navigate(path string) tea.Cmd {
	a.closeRoute()
	name, arg := parsePath(path)
	a.route = route{name: name, arg: arg}
	switch name {
	case routePost:
		a.post = newPostView(a, arg)
		return a.post.load()
	case routeEdit:
		a.editor = newEditorView(a, arg)
		return nil
	case routeProfile:
		a.profile = newProfileView(a, arg)
		return a.profile.load()
	case routeLogin:
		a.login = newLoginView()
		return nil
	}
	return nil
}

// parsePath maps a navigation path to a route. Unknown paths go home.
func parsePath(path string) (name, arg string) {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	switch {
	case len(parts) == 0:
		return routeHome, ""
	case parts[0] == "post" && len(parts) == 2:
		return routePost, parts[1]
	case parts[0] == "post" && len(parts) == 3 && parts[2] == "edit":
		return routeEdit, parts[1]
	case parts[0] == "profile" && len(parts) == 2:
		return routeProfile, parts[1]
	case parts[0] == "login":
		return routeLogin, ""
	}
	return routeHome, ""
}

// flashTimerCmd expires the oldest flash after 3 seconds.
func flashTimerCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

// confirmTimerCmd disarms a pending confirmation after 2 seconds.
func confirmTimerCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return confirmExpiredMsg{}
	})
}
