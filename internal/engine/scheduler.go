package engine

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scribeapp/scribe/internal/api"
	"github.com/scribeapp/scribe/internal/bus"
)

// Client is the request surface the scheduler drives. Every call must abort
// client-side when its context is cancelled.
type Client interface {
	FetchPost(ctx context.Context, id string) (*api.Post, error)
	SavePost(ctx context.Context, id, title, body, token string) error
	Search(ctx context.Context, term string) ([]api.Post, error)
}

// Mode selects which effects a view runs.
type Mode uint8

const (
	// ModeRead fetches the resource on mount, nothing more.
	ModeRead Mode = iota
	// ModeEdit fetches on mount with an ownership check, and saves on
	// submit. The ownership check is a UX convenience, not a security
	// boundary; the server enforces the real one.
	ModeEdit
	// ModeSearch runs the debounced live search.
	ModeSearch
)

// Config wires one view instance.
type Config struct {
	Mode       Mode
	ResourceID string
	Client     Client
	Bus        *bus.Bus
	Quiescence time.Duration // debounce window; 0 means DefaultQuiescence
	Logger     zerolog.Logger
}

// Scheduler observes state transitions and turns the ones that mean "a side
// effect should happen now" into cancellable requests, feeding results back
// as actions. It owns every cancellation handle of its view and releases
// them all on Close.
type Scheduler struct {
	store    *Store
	cfg      Config
	requests *Orchestrator
	debounce *Debouncer
	log      zerolog.Logger
}

func newScheduler(store *Store, cfg Config) *Scheduler {
	return &Scheduler{
		store:    store,
		cfg:      cfg,
		requests: NewOrchestrator(),
		debounce: NewDebouncer(cfg.Quiescence),
		log:      cfg.Logger.With().Str("component", "scheduler").Str("resource", cfg.ResourceID).Logger(),
	}
}

// react is the store listener. It only inspects the delta and hands real
// work to effect goroutines; the reducer stays pure.
func (s *Scheduler) react(prev, next ViewState, act Action) {
	if next.SubmitGeneration > prev.SubmitGeneration {
		s.store.Dispatch(SaveStarted())
		go s.save(next)
	}

	if act.Kind == KindSearchTermChanged {
		if strings.TrimSpace(next.Search.Term) == "" {
			s.debounce.Cancel()
		} else {
			s.debounce.Trigger(func() {
				s.store.Dispatch(SearchTriggered())
			})
		}
	}

	if next.Search.RequestGeneration > prev.Search.RequestGeneration {
		go s.search(next.Search.Term, next.Search.RequestGeneration)
	}
}

// start runs the mount effect: resource-bound views fetch immediately.
func (s *Scheduler) start() {
	if s.cfg.Mode == ModeRead || s.cfg.Mode == ModeEdit {
		go s.fetch()
	}
}

// close cancels every pending timer and in-flight request for this view.
func (s *Scheduler) close() {
	s.debounce.Stop()
	s.requests.Close()
}

func (s *Scheduler) fetch() {
	h := s.requests.Issue(SlotFetch)
	defer h.Done()

	post, err := s.cfg.Client.FetchPost(h.Context(), s.cfg.ResourceID)
	if h.Cancelled() {
		s.log.Debug().Str("slot", SlotFetch.String()).Msg("superseded, response discarded")
		return
	}
	if err != nil {
		// Read failures leave the view in Fetching; no automatic retry.
		s.log.Error().Err(err).Msg("fetch failed")
		return
	}
	if post == nil {
		s.store.Dispatch(FetchNotFound())
		return
	}
	s.store.Dispatch(FetchCompleted(post))

	if s.cfg.Mode == ModeEdit {
		// session is read now, not at mount
		sess := s.cfg.Bus.Session()
		if sess.Username() != post.Author.Username {
			s.cfg.Bus.Flash("access forbidden")
			s.cfg.Bus.Navigate("/")
		}
	}
}

func (s *Scheduler) save(submitted ViewState) {
	h := s.requests.Issue(SlotSave)
	defer h.Done()

	// the auth token is re-read at dispatch time, never captured at mount
	sess := s.cfg.Bus.Session()
	title := submitted.Fields[FieldTitle].Value
	body := submitted.Fields[FieldBody].Value

	err := s.cfg.Client.SavePost(h.Context(), submitted.ResourceID, title, body, sess.Token())
	if h.Cancelled() {
		s.log.Debug().Str("slot", SlotSave.String()).Msg("superseded, response discarded")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("save failed")
		s.store.Dispatch(SaveFailed())
		return
	}
	s.store.Dispatch(SaveFinished())
	s.cfg.Bus.Flash("Post updated!")
}

func (s *Scheduler) search(term string, generation int) {
	h := s.requests.Issue(SlotSearch)
	defer h.Done()

	results, err := s.cfg.Client.Search(h.Context(), term)
	if h.Cancelled() {
		s.log.Debug().Str("slot", SlotSearch.String()).Msg("superseded, response discarded")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("search failed")
		return
	}
	// stamped with the generation at issue time; the reducer discards it if
	// a newer trigger has advanced the counter since
	s.store.Dispatch(SearchResultsArrived(results, generation))
}
