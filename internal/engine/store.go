package engine

import "sync"

// Listener observes every applied transition. Listeners run outside the
// store lock, on the goroutine that drained the queue, strictly in
// application order; dispatching from inside a listener is allowed and
// queues behind the current action.
type Listener func(prev, next ViewState, act Action)

// Store holds one ViewState and applies actions through the reducer,
// strictly in dispatch order. Concurrency is interleaving, not parallelism:
// whichever goroutine dispatches first has its action applied first, and a
// dispatch arriving while the queue is draining is appended rather than
// applied re-entrantly.
type Store struct {
	mu        sync.Mutex
	state     ViewState
	reducer   Reducer
	queue     []Action
	draining  bool
	listeners []Listener
}

func NewStore(initial ViewState, reducer Reducer) *Store {
	return &Store{state: initial, reducer: reducer}
}

// State returns the current state snapshot.
func (s *Store) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener for all subsequent transitions.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Dispatch applies act through the reducer and notifies listeners. If a
// drain loop is already running on another goroutine, the action is queued
// and this call returns immediately; ordering is still preserved.
func (s *Store) Dispatch(act Action) {
	s.mu.Lock()
	s.queue = append(s.queue, act)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		prev := s.state
		s.state = s.reducer.Reduce(prev, next)
		cur := s.state
		ls := make([]Listener, len(s.listeners))
		copy(ls, s.listeners)
		s.mu.Unlock()
		for _, l := range ls {
			l(prev, cur, next)
		}
		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}
